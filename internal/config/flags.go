package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into matching, behavior, service, display, and utility.
// Positional args mirror the legacy tool: file, template, then optional
// numeric title-start-offset and search-length.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X github.com/harunatsu/recname/internal/config.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("recname", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// Exit-triggering and color flags are captured separately and applied
	// after Parse, so that defaults hold unless the user passes the flag.
	var extra extraFlags

	defineBehaviorFlags(fs, cfg)
	defineMatchingFlags(fs, cfg)
	defineServiceFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "recname v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds flags that are applied after Parse: color overrides and
// flags that trigger an exit (help, version).
type extraFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers dry-run, subtitle, force, spaces, episode modes.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Report the destination; do not rename")
	fs.BoolVar(&cfg.DryRun, "t", false, "Same as --dry-run")
	fs.BoolVar(&cfg.RequireSubtitle, "require-subtitle", false, "Fail when the match has no subtitle")
	fs.BoolVar(&cfg.RequireSubtitle, "n", false, "Same as --require-subtitle")
	fs.BoolVar(&cfg.ForceRename, "force", false, "Rename even without a match; overwrite destination")
	fs.BoolVar(&cfg.ForceRename, "f", false, "Same as --force")
	fs.BoolVar(&cfg.KeepSpaces, "keep-spaces", false, "Do not collapse whitespace in the result")
	fs.BoolVar(&cfg.KeepSpaces, "s", false, "Same as --keep-spaces")
	fs.BoolVar(&cfg.EpisodeSearch, "episode-search", false, "Fall back to episode-number search")
	fs.BoolVar(&cfg.EpisodeSearch, "a", false, "Same as --episode-search")
	fs.BoolVar(&cfg.EpisodeOnly, "episode-only", false, "Skip the listing search, use episode search directly")
	fs.BoolVar(&cfg.EpisodeOnly, "a1", false, "Same as --episode-only")
}

// defineMatchingFlags registers --start and --search-len (alternatives to the
// positional numeric args).
func defineMatchingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.TitleOffset, "start", 0, "Title start offset in the filename (0 = derive)")
	fs.IntVar(&cfg.SearchLen, "search-len", cfg.SearchLen, "Search title length in code points")
}

// defineServiceFlags registers --data-dir and --service-url.
func defineServiceFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding the recname.* data files")
	fs.StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "Schedule service base URL")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, e *extraFlags) {
	fs.BoolVar(&e.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&e.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to rotating file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, e *extraFlags) {
	fs.BoolVar(&e.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&e.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&e.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&e.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies color override flags into cfg.
func applyExtraFlags(cfg *Config, e *extraFlags) {
	if e.noColor {
		cfg.ColorMode = ColorNever
	} else if e.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets SourcePath and Template from the positional args
// when not in CheckOnly mode. The optional third and fourth args are the
// numeric title-start-offset and search-length; non-numeric values are
// ignored, matching the legacy tool.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("need a source file and a rename template")
	}
	cfg.SourcePath = args[0]
	cfg.Template = args[1]
	if len(args) > 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(args[2])); err == nil && n >= 0 {
			cfg.TitleOffset = n
		}
	}
	if len(args) > 3 {
		if n, err := strconv.Atoi(strings.TrimSpace(args[3])); err == nil && n > 0 {
			cfg.SearchLen = n
		}
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "recname v" + version + " - recorded-broadcast renamer"},
		{"", ""},
		{"  recname [OPTIONS] <file> <template> [title-offset] [search-length]", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -t, --dry-run", "Report the destination; do not rename"},
		{"  -n, --require-subtitle", "Fail when the match has no subtitle"},
		{"  -f, --force", "Rename even without a match; overwrite destination"},
		{"  -s, --keep-spaces", "Do not collapse whitespace in the result"},
		{"  -a, --episode-search", "Fall back to episode-number search"},
		{"  --a1, --episode-only", "Skip the listing search, use episode search directly"},
		{"", ""},
		{"Matching", ""},
		{"  --start <n>", "Title start offset in the filename (0 = derive)"},
		{"  --search-len <n>", "Search title length in code points (default: 4)"},
		{"", ""},
		{"Service", ""},
		{"  --data-dir <dir>", "Directory holding the recname.* data files"},
		{"  --service-url <url>", "Schedule service base URL"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to rotating file"},
		{"  -c, --check", "Diagnostics (data files, cache, service reachability)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
