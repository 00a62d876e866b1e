// Command lhe2arrow converts LHE files into Arrow IPC files, one stream
// per output array.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/hepstack/lhevec/engine"
)

func main() {
	outDir := flag.String("out", ".", "directory for the .arrows output files")
	workers := flag.Int("workers", 4, "number of concurrent conversions")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: lhe2arrow [-out dir] [-workers n] file.lhe [file.lhe ...]")
		os.Exit(2)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("cannot create output directory")
	}

	results := engine.ConvertAll(paths, *outDir, *workers)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("file", r.Path).Msg("conversion failed")
			continue
		}
		log.Info().
			Str("file", r.Path).
			Int("events", r.Events).
			Int("particles", r.Particles).
			Dur("took", r.Duration).
			Msg("converted")
		for _, out := range r.Outputs {
			log.Debug().Str("output", out).Msg("wrote")
		}
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(results)).Msg("some conversions failed")
		os.Exit(1)
	}
}
