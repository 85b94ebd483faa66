package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint("precision", DefaultPrecision, "")
	flags.Int("digits", DefaultDigits, "")
	flags.String("output", DefaultOutput, "")
	flags.String("log-level", DefaultLogLevel, "")
	flags.Bool("sci", false, "")
	return flags
}

// isolate runs the test from an empty working and home directory.
func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad(t *testing.T) {

	t.Run("Defaults", func(t *testing.T) {
		isolate(t)

		cfg, used, err := Load("", nil)
		require.NoError(t, err)
		assert.Empty(t, used)
		assert.Equal(t, uint(DefaultPrecision), cfg.Precision)
		assert.Equal(t, DefaultDigits, cfg.Digits)
		assert.Equal(t, DefaultOutput, cfg.Output)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Empty(t, cfg.Variables)
	})

	t.Run("File", func(t *testing.T) {
		isolate(t)

		path := writeFile(t, t.TempDir(), `
precision: 512
digits: 30
output: json
variables:
  a: "2"
  b: "a + 1"
functions:
  f:
    params: [x]
    body: "x^2 + a"
`)

		cfg, used, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, path, used)
		assert.Equal(t, uint(512), cfg.Precision)
		assert.Equal(t, 30, cfg.Digits)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, map[string]string{"a": "2", "b": "a + 1"}, cfg.Variables)
		assert.Equal(t, FunctionDef{Params: []string{"x"}, Body: "x^2 + a"}, cfg.Functions["f"])

		defs := cfg.Definitions()
		assert.Equal(t, []string{"x"}, defs.Functions["f"].Params)
		assert.Equal(t, "a + 1", defs.Variables["b"])
		assert.Equal(t, uint(512), cfg.Options().Prec)
	})

	t.Run("WorkingDirectory", func(t *testing.T) {
		isolate(t)
		writeFile(t, ".", "digits: 12\n")

		cfg, used, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, FileName, used)
		assert.Equal(t, 12, cfg.Digits)
	})

	t.Run("HomeDirectory", func(t *testing.T) {
		chdir(t, t.TempDir())
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0o700))
		writeFile(t, filepath.Join(home, ".config"), "digits: 20\n")

		cfg, used, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", FileName), used)
		assert.Equal(t, 20, cfg.Digits)
	})

	t.Run("Precedence", func(t *testing.T) {
		isolate(t)

		path := writeFile(t, t.TempDir(), "precision: 512\ndigits: 30\noutput: json\n")

		t.Setenv("SYMCALC_DIGITS", "40")
		t.Setenv("SYMCALC_LOG_LEVEL", "debug")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--output", "table"}))

		cfg, _, err := Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, uint(512), cfg.Precision, "file over defaults")
		assert.Equal(t, 40, cfg.Digits, "environment over file")
		assert.Equal(t, "debug", cfg.LogLevel, "environment over defaults")
		assert.Equal(t, "table", cfg.Output, "flags over file")
	})

	t.Run("UnchangedFlags", func(t *testing.T) {
		isolate(t)

		path := writeFile(t, t.TempDir(), "digits: 30\n")

		flags := newFlags()
		require.NoError(t, flags.Parse(nil))

		cfg, _, err := Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.Digits)
	})

	t.Run("DashedFlag", func(t *testing.T) {
		isolate(t)

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--log-level", "info"}))

		cfg, _, err := Load("", flags)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("Scientific", func(t *testing.T) {
		isolate(t)

		cfg, _, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, byte('g'), cfg.NumberFormat())

		t.Setenv("SYMCALC_SCI", "true")
		cfg, _, err = Load("", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Sci)
		assert.Equal(t, byte('e'), cfg.NumberFormat())

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--sci=false"}))
		cfg, _, err = Load("", flags)
		require.NoError(t, err)
		assert.False(t, cfg.Sci, "flags over environment")
	})

	t.Run("MissingFile", func(t *testing.T) {
		isolate(t)
		_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		require.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, t.TempDir(), "precision: 8\n")
		_, _, err := Load(path, nil)
		require.ErrorContains(t, err, "precision")
	})
}

func TestValidate(t *testing.T) {

	valid := func() *Config {
		return &Config{Precision: 256, Digits: 16, Output: "text", LogLevel: "warn"}
	}

	require.NoError(t, valid().Validate())

	for name, mutate := range map[string]func(*Config){
		"precision low":  func(c *Config) { c.Precision = MinPrecision - 1 },
		"precision high": func(c *Config) { c.Precision = MaxPrecision + 1 },
		"digits":         func(c *Config) { c.Digits = 0 },
		"digits high":    func(c *Config) { c.Digits = MaxDigits + 1 },
		"output":         func(c *Config) { c.Output = "xml" },
		"log level":      func(c *Config) { c.LogLevel = "trace" },
		"variable":       func(c *Config) { c.Variables = map[string]string{"1a": "2"} },
		"parameter":      func(c *Config) { c.Functions = map[string]FunctionDef{"f": {Params: []string{"x", "x"}, Body: "x"}} },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			require.Error(t, c.Validate())
		})
	}
}
