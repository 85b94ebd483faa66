package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the name of the configuration file looked up when none is given.
const FileName = "symcalc.yaml"

// EnvPrefix prefixes the environment variables read by Load: SYMCALC_LOG_LEVEL sets log_level.
const EnvPrefix = "SYMCALC_"

// Defaults returns the configuration values used when nothing else sets them.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"precision": DefaultPrecision,
		"digits":    DefaultDigits,
		"output":    DefaultOutput,
		"log_level": DefaultLogLevel,
		"sci":       false,
	}
}

// FindFile returns the configuration file to load: explicit if set, else ./symcalc.yaml,
// else $HOME/.config/symcalc.yaml, else the empty string.
func FindFile(explicit string) string {

	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".config", FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Load loads the configuration from the defaults, the configuration file, the environment
// and the flags that were explicitly set, each overriding the previous ones, and
// validates it. It returns the configuration and the path of the file read, if any.
// Flag names map to keys by replacing dashes with underscores.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {

	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("cannot load defaults: %w", err)
	}

	// 2. file
	used := FindFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("cannot read config file %s: %w", used, err)
		}
	}

	// 3. environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("cannot load environment: %w", err)
	}

	// 4. flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("cannot load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("cannot decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, used, nil
}
