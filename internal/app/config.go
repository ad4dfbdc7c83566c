package app

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"blskdf/internal/services/keygen"
)

// Defaults for Config.
const (
	DefaultLogLevel = "info"
	DefaultHomeName = ".blskdf"
)

// Config holds runtime wiring options for building the app. Field tags match
// the CLI flag names so viper can fill it from flags and a config file.
type Config struct {
	Home          string `mapstructure:"home"`            // config dir, e.g. $HOME/.blskdf
	LogLevel      string `mapstructure:"log"`             // debug, info, warn, error, fatal, panic
	MinSeedLength int    `mapstructure:"min-seed-length"` // bytes; 0 only rejects empty seeds
	Workers       int    `mapstructure:"workers"`         // DeriveRange concurrency
	VectorsFile   string `mapstructure:"vectors"`         // optional; empty uses embedded vectors

	logger *logrus.Logger
}

// NewDefaultConfig returns a Config with every default set.
func NewDefaultConfig() *Config {
	return &Config{
		Home:          DefaultHome(),
		LogLevel:      DefaultLogLevel,
		MinSeedLength: keygen.DefaultMinSeedLength,
		Workers:       keygen.DefaultWorkers,
	}
}

// Policy returns the keygen policy described by c.
func (c *Config) Policy() keygen.Policy {
	return keygen.Policy{MinSeedLength: c.MinSeedLength, Workers: c.Workers}
}

// SetLogger replaces the logger, mainly for tests.
func (c *Config) SetLogger(l *logrus.Logger) { c.logger = l }

// Logger returns a formatted logrus Entry, with prefix set to "blskdf".
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Out = os.Stderr
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", "blskdf")
}

// DefaultHome returns $HOME/.blskdf, or "" if no home directory is known.
func DefaultHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, DefaultHomeName)
	}
	if usr, err := user.Current(); err == nil {
		return filepath.Join(usr.HomeDir, DefaultHomeName)
	}
	return ""
}

// LogLevel parses a string into a logrus level. Unknown values map to info.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
