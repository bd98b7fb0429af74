package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout, "no API timeout unless configured")
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "catalog-web.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: aquarium
server:
  addr: ":9000"
  cors_origins: ["https://a.example"]
api:
  base_url: "http://api.internal:5000"
  timeout: 3s
log:
  level: debug
`), 0o644))

	t.Setenv("CATALOG_API__BASE_URL", "https://api.example")
	t.Setenv("CATALOG_SERVER__CORS_ORIGINS", "https://b.example, https://c.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "aquarium", cfg.AppName)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "https://api.example", cfg.API.BaseURL, "env wins over file")
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.LoggerOptions().Level.String())
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"relative base url": func(c *Config) { c.API.BaseURL = "/api" },
		"bad scheme":        func(c *Config) { c.API.BaseURL = "ftp://host" },
		"empty addr":        func(c *Config) { c.Server.Addr = " " },
		"negative timeout":  func(c *Config) { c.API.Timeout = -time.Second },
		"bad log format":    func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestYAML_ReadableDurations(t *testing.T) {
	cfg := Default()
	cfg.API.Timeout = 2 * time.Second

	b, err := cfg.YAML()
	require.NoError(t, err)

	var out struct {
		API map[string]any `yaml:"api"`
	}
	require.NoError(t, yamlv3.Unmarshal(b, &out))
	assert.Equal(t, "2s", out.API["timeout"])
	assert.Equal(t, DefaultBaseURL, out.API["base_url"])
}
