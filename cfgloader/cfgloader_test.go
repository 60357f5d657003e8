package cfgloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flashcat-cloud/flashduty-go/cfgloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host    string `yaml:"host"    validate:"required"`
	Port    int    `yaml:"port"    default:"8080"`
	Secret  string `yaml:"secret"  mask:"true"`
	Timeout string `yaml:"timeout" default:"3s"`
}

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))

	data := []byte("host: ${CFGLOADER_TEST_HOST}\nsecret: hunter2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "test.yaml"), data, 0o600))

	t.Chdir(dir)
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CFGLOADER_TEST_HOST", "example.org")

	cfg := cfgloader.MustLoad[testConfig](cfgloader.WithSilent())

	assert.Equal(t, "example.org", cfg.Host, "env references must be expanded")
	assert.Equal(t, 8080, cfg.Port, "default tag must apply to absent fields")
	assert.Equal(t, "hunter2", cfg.Secret)
	assert.Equal(t, "3s", cfg.Timeout)
}
