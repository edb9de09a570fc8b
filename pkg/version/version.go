//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package version provides build and version information for siphon-seed.
package version

import (
	"fmt"
	"runtime"
)

// Build information set at compile time via ldflags.
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// DatasetFormat is bumped whenever the layout of the generated documents
// changes. Imports record it next to the generator version.
const DatasetFormat = 1

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf(
		"siphon-seed %s (dataset format: %d, commit: %s, built: %s, go: %s)",
		Version, DatasetFormat, Commit, BuildDate, runtime.Version(),
	)
}

// Short returns just the version string.
func Short() string {
	return Version
}
