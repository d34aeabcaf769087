// Command tiger computes TIGER and corrected TIGER rates for character data.
//
//	tiger rates data.csv
//	tiger rates --scorer corrected --select 1,2,3 --output json data.csv
//	tiger matrix --format wordlist words.tsv
//	tiger compare a.tsv b.tsv c.json
//
// Input files are taxon × character matrices (csv, tsv), long-format
// wordlists or JSON fixtures. Settings come from an optional YAML file
// (--config) and are overridden by flags.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("tiger failed")
		os.Exit(1)
	}
}
