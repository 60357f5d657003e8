// Package cfgloader provides a simple way to load and validate application
// configuration at startup.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

//nolint:gochecknoglobals // valid ENVIRONMENT values
var knownEnvs = []string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}

// MustLoad loads configuration into a fresh T from ./config/${ENVIRONMENT}.yaml,
// relative to the working directory.
//
// A .env file is honored if present, and ${VAR} references inside the YAML are
// expanded from the environment before parsing. Fields absent from the file
// receive their `default` struct tag values, and the result is checked against
// its `validate` struct tags (go-playground/validator syntax).
//
// Any failure is fatal: the error is logged and the process exits. Unless
// WithSilent is passed, the loaded config is printed with `mask:"true"`
// fields starred out.
func MustLoad[T any](opts ...Option) T {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		fatal("arg config must not be a pointer")
	}

	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains(knownEnvs, env) {
		fatal("ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test")
	}

	path := fmt.Sprintf("./config/%s.yaml", env)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fatal(fmt.Sprintf("config file not found in the path %s", path))
	}
	if err != nil {
		fatal(fmt.Sprintf("failed to read config file %s: %v", path, err))
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		fatal(fmt.Sprintf("failed to unmarshal %s config file: %v", env, err))
	}

	if err := defaults.Set(&config); err != nil {
		fatal(fmt.Sprintf("failed to set default values for config: %v", err))
	}

	validateConfig(&config)

	if !options.Silent {
		printConfig(config)
	}

	return config
}

func validateConfig(config any) {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(config)
	if err == nil {
		return
	}

	if errs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // type assertion for validator errors handling
		for _, fieldErr := range errs {
			tag := fieldErr.Tag()
			if fieldErr.Param() != "" {
				tag += "=" + fieldErr.Param()
			}
			slog.Error(fmt.Sprintf("[cfgloader]: config validation failed on %s: %s", fieldErr.Namespace(), tag))
		}
		os.Exit(1)
	}

	fatal(fmt.Sprintf("config validation failed: %v", err))
}

func fatal(msg string) {
	slog.Error("[cfgloader]: " + msg)
	os.Exit(1)
}
