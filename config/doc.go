// Package config loads the YAML run configuration of the tiger command.
//
// A configuration names the scorer, the partition and reader settings, the
// characters to rate and the output format. Every field has a default, so
// a file only lists what it changes:
//
//	scorer: corrected
//	filter_extremes: false
//	selected: ["1", "2", "3"]
//	workers: 4
//	input:
//	  format: wordlist
//	  separator: "|"
//	  columns: {taxon: LANGUAGE, character: CONCEPT, state: COGID}
//	output: table
//	log_level: info
//
// Unknown keys are rejected. The Options methods translate a validated
// Config into options for the partition, agreement, rates and patterns
// packages.
package config
