package sh

import (
	"flag"

	"github.com/robotalks/angle.go/pkg/angle"
)

// Config defines the shell defaults.
type Config struct {
	Precision            string
	SecondFractionDigits float64
}

// Defaults
const (
	DefaultPrecision            = string(angle.PrecisionSecond)
	DefaultSecondFractionDigits = 0
)

var defaultConfig = Config{
	Precision:            DefaultPrecision,
	SecondFractionDigits: DefaultSecondFractionDigits,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Precision, "precision", defaultConfig.Precision, "Default DMS precision: auto, degree, minute or second.")
	flag.Float64Var(&defaultConfig.SecondFractionDigits, "second-digits", defaultConfig.SecondFractionDigits, "Default digits after the decimal point of DMS seconds (0-6).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// DMSOptions creates the formatting options from the config.
func (c *Config) DMSOptions() *angle.DMSOptions {
	return &angle.DMSOptions{
		Precision:            angle.Precision(c.Precision),
		SecondFractionDigits: c.SecondFractionDigits,
	}
}
