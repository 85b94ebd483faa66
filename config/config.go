// Package config provides the layered configuration of the symcalc command.
//
// Values are read, from the lowest to the highest priority, from the built-in defaults,
// a YAML file, SYMCALC_* environment variables and explicitly set command line flags.
package config

import (
	"fmt"

	"github.com/symcalc/symcalc/eval"
	"github.com/symcalc/symcalc/parser"
	"github.com/symcalc/symcalc/utils"
)

const (
	// DefaultPrecision is the default working precision in bits.
	DefaultPrecision = eval.DefaultPrec
	// DefaultDigits is the default number of significant digits printed.
	DefaultDigits = 16
	// DefaultOutput is the default output format.
	DefaultOutput = "text"
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"

	// MinPrecision and MaxPrecision bound the working precision in bits.
	MinPrecision = 16
	MaxPrecision = 3000

	// MaxDigits bounds the number of significant digits printed.
	MaxDigits = 900
)

// OutputFormats are the accepted values of Config.Output.
var OutputFormats = []string{"text", "table", "json", "yaml"}

// LogLevels are the accepted values of Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// FunctionDef is a user function as written in the configuration file.
type FunctionDef struct {
	Params []string `koanf:"params"`
	Body   string   `koanf:"body"`
}

// Config holds all the configuration options.
type Config struct {
	Precision uint                   `koanf:"precision"`
	Digits    int                    `koanf:"digits"`
	Output    string                 `koanf:"output"`
	LogLevel  string                 `koanf:"log_level"`
	Sci       bool                   `koanf:"sci"`
	Variables map[string]string      `koanf:"variables"`
	Functions map[string]FunctionDef `koanf:"functions"`
}

// Validate checks that the configuration values are within their bounds and that the
// user definitions are well formed.
func (c *Config) Validate() error {

	if c.Precision < MinPrecision || c.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision: must be in [%d, %d] bits but is %d", MinPrecision, MaxPrecision, c.Precision)
	}

	if c.Digits < 1 || c.Digits > MaxDigits {
		return fmt.Errorf("invalid digits: must be in [1, %d] but is %d", MaxDigits, c.Digits)
	}

	if !utils.IsInSlice(c.Output, OutputFormats) {
		return fmt.Errorf("invalid output: must be one of %v but is %q", OutputFormats, c.Output)
	}

	if !utils.IsInSlice(c.LogLevel, LogLevels) {
		return fmt.Errorf("invalid log_level: must be one of %v but is %q", LogLevels, c.LogLevel)
	}

	if err := c.Definitions().Validate(); err != nil {
		return fmt.Errorf("invalid definitions: %w", err)
	}

	return nil
}

// NumberFormat returns the big.Float format of the printed values: 'e' in scientific
// notation, 'g' otherwise.
func (c *Config) NumberFormat() byte {
	if c.Sci {
		return 'e'
	}
	return 'g'
}

// Options returns the evaluation options.
func (c *Config) Options() eval.Options {
	return eval.Options{Prec: c.Precision}
}

// Definitions returns the user variables and functions.
func (c *Config) Definitions() parser.Definitions {

	defs := parser.Definitions{
		Variables: c.Variables,
		Functions: make(map[string]parser.Function, len(c.Functions)),
	}

	for _, name := range utils.GetSortedKeys(c.Functions) {
		f := c.Functions[name]
		defs.Functions[name] = parser.Function{Params: f.Params, Body: f.Body}
	}

	return defs
}
