package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/vango-dev/vdiff/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vdiff.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultExportDir is where rendered HTML is written.
	DefaultExportDir = "out"

	// DefaultReadTimeout is the idle limit of a preview session.
	DefaultReadTimeout = "5m"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents vdiff.json.
type Config struct {
	// Server configures `vdiff serve`.
	Server ServerConfig `json:"server,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty"`

	// Export configures where `vdiff render` writes.
	Export ExportConfig `json:"export,omitempty"`

	// Color is auto, always or never.
	Color string `json:"color,omitempty"`

	fs         afero.Fs
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// ReadTimeout closes sessions idle for longer (e.g. "5m"). "0" disables it.
	ReadTimeout string `json:"readTimeout,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// ExportConfig contains output settings.
type ExportConfig struct {
	// Dir is the output directory for the filesystem sink.
	Dir string `json:"dir,omitempty"`

	// S3, when it names a bucket, enables the S3 sink.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config contains S3 sink settings.
type S3Config struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`

	// Endpoint overrides the service endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`
}

// New returns a configuration with defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			ReadTimeout: DefaultReadTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Export: ExportConfig{
			Dir: DefaultExportDir,
		},
		Color: ColorAuto,
	}
}

// Load reads vdiff.json from dir on the OS filesystem.
func Load(dir string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), dir)
}

// LoadFs reads vdiff.json from dir on fs.
func LoadFs(fs afero.Fs, dir string) (*Config, error) {
	return LoadFileFs(fs, filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from path on the OS filesystem.
func LoadFile(path string) (*Config, error) {
	return LoadFileFs(afero.NewOsFs(), path)
}

// LoadFileFs reads configuration from path on fs.
func LoadFileFs(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --config")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.fs = fs
	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads vdiff.json from dir on fs, falling back to New when
// the file does not exist. Other errors are returned.
func LoadOrDefault(fs afero.Fs, dir string) (*Config, error) {
	cfg, err := LoadFs(fs, dir)
	if errors.Code(err) == "E141" {
		cfg = New()
		cfg.fs = fs
		return cfg, nil
	}
	return cfg, err
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if err := afero.WriteFile(c.fs, path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").WithDetail("server.port must be between 0 and 65535")
	}
	if _, err := c.ReadTimeout(); err != nil {
		return errors.New("E122").WithDetailf("server.readTimeout %q is not a duration", c.Server.ReadTimeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E122").WithDetailf("log.format %q must be text or json", c.Log.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New("E122").WithDetailf("color %q must be auto, always or never", c.Color)
	}
	return nil
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ReadTimeout parses server.readTimeout.
func (c *Config) ReadTimeout() (time.Duration, error) {
	if c.Server.ReadTimeout == "0" {
		return 0, nil
	}
	return time.ParseDuration(c.Server.ReadTimeout)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("E122").WithDetailf("log.level %q must be debug, info, warn or error", name)
}
