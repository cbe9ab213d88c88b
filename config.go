package qc

import "github.com/kelseyhightower/envconfig"

// settings mirrors the QC_* process environment variables consulted when
// a Config or the Default environment leaves a value unset:
//
//	QC_SEED    random seed (unset or 0 means time-based)
//	QC_SIZE    size bound (default 256)
//	QC_TRIES   trials per wrapped call (default 100)
//	QC_VERBOSE log every trial's arguments
type settings struct {
	Seed    int64 `envconfig:"SEED"`
	Size    int   `envconfig:"SIZE" default:"256"`
	Tries   int   `envconfig:"TRIES" default:"100"`
	Verbose bool  `envconfig:"VERBOSE"`
}

// processSettings reads the QC_* variables. Malformed values fall back to
// the package defaults rather than failing a test run.
func processSettings() settings {
	var s settings
	if err := envconfig.Process("qc", &s); err != nil {
		return settings{Size: DefaultSize, Tries: DefaultTries}
	}
	return s
}
