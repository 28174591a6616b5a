package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultNotesFile is used when nothing else names the note file.
const DefaultNotesFile = "note.txt"

// Config holds CLI configuration stored at ~/.notes/config.yaml.
type Config struct {
	NotesFile string `yaml:"notes_file" mapstructure:"notes_file"`
	VimKeys   bool   `yaml:"vim_keys" mapstructure:"vim_keys"`
	Debug     bool   `yaml:"debug,omitempty" mapstructure:"debug"`
	LogFile   string `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// Dir returns the directory holding config and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notes")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file, NOTES_FILE and NOTES_* env vars. A missing file yields defaults.
// When flags is non-nil its "file" and "debug" flags override both.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("notes_file", DefaultNotesFile)
	v.SetDefault("vim_keys", true)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", filepath.Join(Dir(), "notes.log"))

	v.SetConfigType("yaml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("NOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("notes_file", "NOTES_FILE"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if f := flags.Lookup("file"); f != nil {
			if err := v.BindPFlag("notes_file", f); err != nil {
				return nil, fmt.Errorf("bind file flag: %w", err)
			}
		}
		if f := flags.Lookup("debug"); f != nil {
			if err := v.BindPFlag("debug", f); err != nil {
				return nil, fmt.Errorf("bind debug flag: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if strings.TrimSpace(cfg.NotesFile) == "" {
		return nil, fmt.Errorf("config missing notes_file")
	}

	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
