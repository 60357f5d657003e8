package cfgloader

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

func printConfig(config any) {
	out, err := yaml.Marshal(maskValue(reflect.ValueOf(config)).Interface())
	if err != nil {
		slog.Error("[cfgloader]: failed to marshal config", "error", err.Error())
		return
	}
	slog.Info(fmt.Sprintf("Loaded config:\n%s", string(out)))
}

// maskValue returns a copy of val with every struct field tagged mask:"true"
// replaced by stars (strings) or zeroed (other kinds). Secrets such as
// integration keys must never land in logs.
func maskValue(val reflect.Value) reflect.Value {
	if !val.IsValid() {
		return val
	}

	switch val.Kind() { //nolint:exhaustive // only handled kinds are relevant to masking
	case reflect.Ptr:
		if val.IsNil() {
			return val
		}
		ptr := reflect.New(val.Elem().Type())
		ptr.Elem().Set(maskValue(val.Elem()))
		return ptr

	case reflect.Struct:
		masked := reflect.New(val.Type()).Elem()
		for i := range val.NumField() {
			field := val.Type().Field(i)
			origVal := val.Field(i)

			if !masked.Field(i).CanSet() || !origVal.CanInterface() {
				continue
			}

			if field.Tag.Get("mask") == "true" {
				masked.Field(i).Set(maskField(origVal))
			} else {
				masked.Field(i).Set(maskValue(origVal))
			}
		}
		return masked

	default:
		return val
	}
}

func maskField(val reflect.Value) reflect.Value {
	if val.Kind() == reflect.String {
		return reflect.ValueOf(strings.Repeat("*", len(val.String())))
	}
	return reflect.Zero(val.Type())
}
