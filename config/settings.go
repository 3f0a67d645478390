// SPDX-License-Identifier: MIT

// Package config holds the TOML settings of the echelon command.
//
// A settings file carries one [echelon] table; every key is optional and
// falls back to DefaultSettings:
//
//	[echelon]
//	logLevel = "debug"
//	randomFill = true
//	seed = 42
//	pivotEpsilon = 0.01
//	exactPivot = false
//	trace = true
package config

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/errgo.v1"

	"github.com/katalvlaran/echelon/matrix"
)

const (
	DefaultLogLevel = "INFO"
	DefaultPrompt   = "Enter command(0 for help): "
)

// Settings is the effective configuration of one session.
type Settings struct {
	LogLevel string `toml:"logLevel"`
	LogFile  string `toml:"logFile"`

	// RandomFill is the initial state of the random-fill toggle (command 5).
	RandomFill bool `toml:"randomFill"`
	// Seed makes random fill reproducible; 0 draws from crypto/rand.
	Seed int64 `toml:"seed"`

	PivotEpsilon float64 `toml:"pivotEpsilon"`
	ExactPivot   bool    `toml:"exactPivot"`
	// Trace prints every elementary row operation followed by the matrix.
	Trace bool `toml:"trace"`
	// AugmentedReduce reads REF/RREF input as augmented: the last column is
	// shown after a bar and excluded from pivoting.
	AugmentedReduce bool `toml:"augmentedReduce"`

	Prompt string `toml:"prompt"`
	// ForcePrompt writes prompts even when stdin is not a terminal.
	ForcePrompt bool `toml:"forcePrompt"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:        DefaultLogLevel,
		PivotEpsilon:    matrix.DefaultPivotEpsilon,
		ExactPivot:      matrix.DefaultExactPivot,
		Trace:           true,
		AugmentedReduce: true,
		Prompt:          DefaultPrompt,
	}
}

// ParseSettings decodes a TOML document over DefaultSettings and validates it.
func ParseSettings(data string) (*Settings, error) {
	var doc struct {
		Echelon Settings `toml:"echelon"`
	}
	doc.Echelon = DefaultSettings()
	_, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, errgo.Mask(err)
	}

	err = doc.Echelon.Resolve()
	if err != nil {
		return nil, errgo.Mask(err)
	}

	return &doc.Echelon, nil
}

// LoadSettings reads and parses the file at path.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Notef(err, "cannot read settings %q", path)
	}

	return ParseSettings(string(data))
}

// Resolve checks value ranges. It is called by ParseSettings and must be
// called again after command-line overrides.
func (s *Settings) Resolve() error {
	eps := s.PivotEpsilon
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		return errgo.Newf("pivotEpsilon must be in (0, 1), got %v", eps)
	}

	return nil
}

// ReducerOptions translates the pivot policy into matrix options.
// The tracer is supplied by the caller because it depends on the output sink.
// s must have passed Resolve: an out-of-range PivotEpsilon panics in
// matrix.WithEpsilon.
func (s *Settings) ReducerOptions(tracer matrix.Tracer) []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(s.PivotEpsilon)}
	if s.ExactPivot {
		opts = append(opts, matrix.WithExactPivot())
	}
	if s.Trace && tracer != nil {
		opts = append(opts, matrix.WithTracer(tracer))
	}

	return opts
}

// IntSource returns the random source matching Seed.
func (s *Settings) IntSource() matrix.IntSource {
	if s.Seed == 0 {
		return matrix.CryptoSource{}
	}

	return matrix.NewSeededSource(s.Seed)
}
