package config

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is loaded from an optional yaml file, then from environment
// variables named after the upper-cased keys (e.g. SERVER_PORT), which take
// precedence over the file.
type Config struct {
	Hostname               string        `koanf:"-"`
	LegacyNumericSortOrder bool          `koanf:"legacy_numeric_sort_order"`
	RequestTimeout         time.Duration `koanf:"request_timeout" default:"10s" validate:"gt=0"`
	ResourcesDir           string        `koanf:"resources_dir" default:"resources" validate:"required"`
	RootDir                string        `koanf:"root_dir" default:"." validate:"required"`
	ServerHost             string        `koanf:"server_host" default:"127.0.0.1" validate:"required"`
	ServerPort             int           `koanf:"server_port" default:"3000" validate:"min=0,max=65535"`
}

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "configuration/config.yaml"
)

func New() (*Config, error) {
	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	known := keys()
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.Hostname = hostname

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns the default config, listening on a random port.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.Hostname = "test"
	cfg.ServerPort = 0
	return cfg
}

// Addr is the address the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// keys returns the config keys that can be set, as spelled in the yaml file.
func keys() map[string]struct{} {
	known := map[string]struct{}{}
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("koanf")
		if tag == "" || tag == "-" {
			continue
		}
		known[tag] = struct{}{}
	}
	return known
}

func validate(cfg *Config) error {
	v := validator.New()
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errors.WithStack(err)
	}

	fe := errs[0]
	key := strcase.ToSnake(fe.Field())
	if fe.Tag() == "required" {
		return errors.Errorf("missing required config: set %s in the config file or %s in the environment", key, strcase.ToScreamingSnake(fe.Field()))
	}
	return errors.Errorf("invalid config: %s (%s) failed the %q check with value %v", key, strcase.ToScreamingSnake(fe.Field()), fe.Tag(), fe.Value())
}
