// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation. Heuristic defaults match the
// legacy renamer scripts for parity.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Data file names, resolved relative to Config.DataDir. The formats are
// owned by external collaborators; comment lines start with ':'.
const (
	BroadcasterFile = "recname.srv" // displayName,aliasForMatch,outputName,channelId
	PreReplaceFile  = "recname.rp1" // find,replace applied to the filename
	PostReplaceFile = "recname.rp2" // find,replace applied to the rendered path
	ExcludeFile     = "recname.exc" // substrings that disable processing
	CacheFile       = "recname.tid" // title,programId ascending by programId
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// adjusted from the environment by [ApplyEnv], and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Positional inputs.
	SourcePath string // File to rename.
	Template   string // Rename template with $SC...$ macros.

	// Heuristic tuning. TitleOffset 0 means "derive from the filename";
	// downstream code never uses 0 directly (coerced to 1).
	TitleOffset int // Optional third positional arg.
	SearchLen   int // Optional fourth positional arg. Default: 4 code points.

	// Behavior flags.
	DryRun          bool // Report the destination, touch nothing.
	RequireSubtitle bool // Fail when the match carries no subtitle.
	ForceRename     bool // Rename without a match; also overwrite destination.
	KeepSpaces      bool // Skip whitespace collapsing in the rendered path.
	EpisodeSearch   bool // Fall back to episode-number search.
	EpisodeOnly     bool // Skip the listing search entirely.

	// External collaborators.
	DataDir        string // Directory holding the recname.* data files.
	ServiceURL     string // Schedule service base URL.
	HTTPTimeoutSec int    // Per-request timeout. Default: 30.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional rotating log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// renamer. Used as the base before [ApplyEnv] and [ParseFlags] apply
// overrides.
func DefaultConfig() Config {
	return Config{
		SearchLen:      4,
		ServiceURL:     "http://cal.syoboi.jp",
		HTTPTimeoutSec: 30,
		ColorMode:      ColorAuto,
	}
}

// DataFile returns the path of one of the recname.* data files. When
// DataDir is empty the directory of the running executable is used,
// matching where the legacy tool kept its tables.
func (c *Config) DataFile(name string) string {
	dir := c.DataDir
	if dir == "" {
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Dir(exe)
		}
	}
	return filepath.Join(dir, name)
}

// Validate checks enum fields and required inputs, and coerces out-of-range
// tuning values back to their defaults the way the legacy tool did.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.SearchLen < 1 {
		c.SearchLen = 4
	}
	if c.TitleOffset < 0 {
		c.TitleOffset = 0
	}
	if c.HTTPTimeoutSec < 1 {
		c.HTTPTimeoutSec = 30
	}
	if !strings.HasPrefix(c.ServiceURL, "http://") && !strings.HasPrefix(c.ServiceURL, "https://") {
		return fmt.Errorf("invalid service URL %q (must be http or https)", c.ServiceURL)
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")

	if c.CheckOnly {
		return nil
	}
	if c.SourcePath == "" {
		return errors.New("no source file given")
	}
	if c.Template == "" {
		return errors.New("no rename template given")
	}
	return nil
}
