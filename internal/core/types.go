package core

import (
	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/db"
	"github.com/prittamravi/clines/internal/readme"
	"github.com/prittamravi/clines/internal/scan"
	"github.com/prittamravi/clines/internal/size"
)

// RunOptions configures one count-and-update invocation.
type RunOptions struct {
	Root       string
	ConfigPath string
	ReadmePath string
	Variant    config.Variant
	// DryRun computes the README change without writing it.
	DryRun bool
	// Record stores the run in the history database when one is attached.
	Record bool
}

// Outcome is everything one invocation produced.
type Outcome struct {
	Result   *scan.Result
	Category size.Category
	Block    string
	Readme   *readme.Change
	Run      *db.Run
}
