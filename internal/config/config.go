package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"aquarium-catalog/internal/adapters/catalogapi"
	"aquarium-catalog/internal/platform/logger"
)

const (
	DefaultPath    = "catalog-web.yml"
	EnvPrefix      = "CATALOG_"
	DefaultAddr    = ":8080"
	DefaultBaseURL = catalogapi.DefaultBaseURL
)

type Config struct {
	AppName string       `koanf:"app_name"`
	Server  ServerConfig `koanf:"server"`
	API     APIConfig    `koanf:"api"`
	Log     LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	// Orígenes permitidos para POST /search. Vacío => "*".
	CORSOrigins []string `koanf:"cors_origins"`
	// Directorio con css/img. Vacío => no se sirve nada estático.
	StaticDir string `koanf:"static_dir"`
}

type APIConfig struct {
	BaseURL string `koanf:"base_url"`
	// 0 => sin timeout (solo el contexto del request).
	Timeout time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default: valores base antes de archivo y env.
// WriteTimeout queda en 0: el render espera al backend sin límite propio.
func Default() *Config {
	return &Config{
		AppName: "catalog-web",
		Server: ServerConfig{
			Addr:        DefaultAddr,
			ReadTimeout: 5 * time.Second,
		},
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load arma la config en capas:
// defaults -> YAML en path (si existe) -> env CATALOG_* -> PORT.
// CATALOG_API__BASE_URL => api.base_url ("__" separa niveles).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// compat: PORT como en el deploy original
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Server.Addr = ":" + v
	}
	cfg.Server.CORSOrigins = splitList(cfg.Server.CORSOrigins)

	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// splitList acepta tanto una lista YAML como "a,b" desde env.
func splitList(in []string) []string {
	var out []string
	for _, v := range in {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be non-negative")
	}

	u, err := url.Parse(strings.TrimSpace(c.API.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid api.base_url %q: %w", c.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http(s) URL", c.API.BaseURL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	return nil
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.AppName,
	}
}

// YAML vuelca la config efectiva con las duraciones legibles ("5s").
func (c *Config) YAML() ([]byte, error) {
	type server struct {
		Addr         string   `yaml:"addr"`
		ReadTimeout  string   `yaml:"read_timeout"`
		WriteTimeout string   `yaml:"write_timeout"`
		CORSOrigins  []string `yaml:"cors_origins"`
		StaticDir    string   `yaml:"static_dir"`
	}
	type api struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	}
	type log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	out := struct {
		AppName string `yaml:"app_name"`
		Server  server `yaml:"server"`
		API     api    `yaml:"api"`
		Log     log    `yaml:"log"`
	}{
		AppName: c.AppName,
		Server: server{
			Addr:         c.Server.Addr,
			ReadTimeout:  c.Server.ReadTimeout.String(),
			WriteTimeout: c.Server.WriteTimeout.String(),
			CORSOrigins:  c.Server.CORSOrigins,
			StaticDir:    c.Server.StaticDir,
		},
		API: api{BaseURL: c.API.BaseURL, Timeout: c.API.Timeout.String()},
		Log: log{Level: c.Log.Level, Format: c.Log.Format},
	}

	b, err := yamlv3.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return b, nil
}
