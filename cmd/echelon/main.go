// SPDX-License-Identifier: MIT

// Command echelon is an interactive calculator for dense matrices: addition,
// multiplication and reduction to (reduced) row-echelon form, with every
// elementary row operation printed as it is applied.
//
//	echelon [-config file.toml] [-random] [-seed n] [-exact] [-quiet]
//
// Commands are read from standard input; see "0" (help) once running.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/echelon/config"
	"github.com/katalvlaran/echelon/console"
)

var (
	configFile = flag.String("config", "", "config file")
	random     = flag.Bool("random", false, "start with random fill enabled")
	seed       = flag.Int64("seed", 0, "random fill seed (0: non-reproducible)")
	exact      = flag.Bool("exact", false, "pick pivots by exact non-zero test instead of tolerance")
	quiet      = flag.Bool("quiet", false, "do not print elementary row operations")
)

func main() {
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		die(err)
	}
	logWriter, err := openLog(settings)
	if err != nil {
		die(err)
	}

	prompts := settings.ForcePrompt ||
		isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	s, err := console.NewSession(os.Stdin, os.Stdout, *settings, console.WithPrompts(prompts))
	if err != nil {
		logWriter.Close()
		die(err)
	}
	err = s.Run()
	logWriter.Close()
	die(err)
}

// loadSettings reads the optional config file and applies flag overrides.
func loadSettings() (*config.Settings, error) {
	settings := config.DefaultSettings()
	if *configFile != "" {
		loaded, err := config.LoadSettings(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration file '%s'.\n", *configFile)
			return nil, errors.WithStack(err)
		}
		settings = *loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "random":
			settings.RandomFill = *random
		case "seed":
			settings.Seed = *seed
		case "exact":
			settings.ExactPivot = *exact
		case "quiet":
			settings.Trace = !*quiet
		}
	})
	if err := settings.Resolve(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &settings, nil
}

// openLog applies LogLevel and LogFile to the standard logrus logger.
// An invalid level is reported and the default kept.
func openLog(settings *config.Settings) (io.WriteCloser, error) {
	level, err := log.ParseLevel(strings.ToLower(settings.LogLevel))
	if err != nil {
		log.Warningf("invalid LogLevel=%q: %v", settings.LogLevel, err)
	} else {
		log.SetLevel(level)
	}
	if settings.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open LogFile=%q", settings.LogFile)
	}
	log.SetOutput(f)
	log.Debug("log opened")

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func die(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
