package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/harunatsu/recname/internal/broadcast"
	"github.com/harunatsu/recname/internal/config"
	"github.com/harunatsu/recname/internal/episode"
	"github.com/harunatsu/recname/internal/logging"
	"github.com/harunatsu/recname/internal/macro"
	"github.com/harunatsu/recname/internal/normalize"
	"github.com/harunatsu/recname/internal/schedule"
	"github.com/harunatsu/recname/internal/subst"
)

var (
	// ErrExcluded means the source path matched an exclusion rule.
	ErrExcluded = errors.New("file excluded by rule")

	// ErrSourceMissing means the file to rename does not exist.
	ErrSourceMissing = errors.New("source file not found")

	// ErrNoMatch means no program could be resolved and forcing was off.
	ErrNoMatch = errors.New("no matching program found")

	// ErrNoSubtitle means a program matched but carried no subtitle while
	// one was required.
	ErrNoSubtitle = errors.New("program has no subtitle")
)

// maxPathRunes bounds the rendered destination, extension included.
const maxPathRunes = 255

// fallbackDuration stands in for a missing program end time.
const fallbackDuration = 30 * time.Minute

// Runner wires one rename run together.
type Runner struct {
	Cfg    *config.Config
	Log    *logging.Logger
	Fs     afero.Fs
	Client *schedule.Client

	// Now is the clock used for date heuristics. Nil means time.Now.
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run resolves and renames the configured file, returning the destination
// path.
func (r *Runner) Run(ctx context.Context) (string, error) {
	cfg := r.Cfg

	exclusions, err := subst.LoadExclusions(r.Fs, cfg.DataFile(config.ExcludeFile))
	if err != nil {
		r.Log.Warn("exclusion rules unreadable: %v", err)
	}
	if subst.Excluded(cfg.SourcePath, exclusions) {
		return "", fmt.Errorf("%w: %s", ErrExcluded, cfg.SourcePath)
	}

	if !cfg.DryRun {
		if _, err := r.Fs.Stat(cfg.SourcePath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrSourceMissing, cfg.SourcePath)
		}
	}

	reg, err := broadcast.LoadRegistry(r.Fs, cfg.DataFile(config.BroadcasterFile))
	if err != nil {
		return "", err
	}

	raw := normalize.SplitPath(cfg.SourcePath)
	r.Log.Debug("path=%q base=%q ext=%q", raw.Dir, raw.Base, raw.Ext)

	hint := normalize.ExtractDateHint(r.Fs, raw.Base, cfg.SourcePath, cfg.TitleOffset, r.now())
	r.Log.Debug("target=%s anchored=%v window=%dd offset=%d",
		hint.Target.Format("2006-01-02 15:04:05"), hint.AnchoredAtStart, hint.WindowDays, hint.TitleOffset)

	titlePos := hint.TitleOffset
	if cfg.TitleOffset > 0 {
		titlePos = cfg.TitleOffset
	}
	work := raw.Base
	if titlePos > 1 {
		if rs := []rune(work); titlePos < len(rs) {
			work = string(rs[titlePos:])
		} else {
			work = ""
		}
	}

	preRules, err := subst.LoadTable(r.Fs, cfg.DataFile(config.PreReplaceFile))
	if err != nil {
		r.Log.Warn("filename replacement rules unreadable: %v", err)
	}
	work = preRules.Apply(work)

	stripped, err := normalize.StripLeadingDecoration(work)
	if err != nil {
		return "", err
	}
	normalized := normalize.NormalizeWidth(stripped)
	searchTitle := normalize.ExtractSearchTitle(normalized, cfg.SearchLen)
	r.Log.Debug("normalized=%q search=%q", normalized, searchTitle)

	id := reg.Resolve(normalized, cfg.TitleOffset)
	if b, ok := reg.Get(id); ok {
		r.Log.Debug("broadcaster: %s (%s)", b.DisplayName, b.Alias)
	} else {
		r.Log.Debug("broadcaster: unknown")
	}

	match, matched, id := r.resolveProgram(ctx, reg, id, searchTitle, normalized, hint)

	title := match.Title
	var start, end time.Time
	if !matched {
		if !cfg.ForceRename {
			return "", fmt.Errorf("%w: %s", ErrNoMatch, searchTitle)
		}
		r.Log.Warn("no program information for %q, forcing rename", searchTitle)
		title = leadingToken(normalized)
		start = hint.Target
		end = start.Add(fallbackDuration)
	} else {
		if cfg.RequireSubtitle && match.Subtitle == "" {
			return "", fmt.Errorf("%w: %s", ErrNoSubtitle, match.Title)
		}
		start = match.Start
		if !match.HasStart {
			start = hint.Target
		}
		end = match.End
		if !match.HasEnd {
			end = start.Add(fallbackDuration)
		}
	}

	var serviceName string
	if b, ok := reg.Get(id); ok {
		serviceName = b.OutputName
	}

	rendered := macro.Expand(cfg.Template, macro.Input{
		Title:        title,
		Subtitle:     match.Subtitle,
		EpisodeLabel: match.EpisodeLabel,
		Part:         match.Part,
		Service:      serviceName,
		Start:        start,
		End:          end,
	})

	postRules, err := subst.LoadTable(r.Fs, cfg.DataFile(config.PostReplaceFile))
	if err != nil {
		r.Log.Warn("rendered-path replacement rules unreadable: %v", err)
	}
	rendered = postRules.Apply(rendered)

	rendered = macro.ReplaceInvalidChars(rendered, cfg.Template)
	if !cfg.KeepSpaces {
		rendered = macro.CollapseSpaces(rendered)
	}

	dst := fullDestPath(rendered, cfg.SourcePath, raw.Dir)
	if rs := []rune(dst); len(rs) > maxPathRunes-len([]rune(raw.Ext)) {
		r.Log.Warn("destination path too long, truncating")
		dst = string(rs[:maxPathRunes-len([]rune(raw.Ext))])
	}
	dst += raw.Ext

	exec := &Executor{Fs: r.Fs, DryRun: cfg.DryRun, Overwrite: cfg.ForceRename}
	if err := exec.Execute(cfg.SourcePath, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// resolveProgram tries the time-based listing match first, then the
// episode-number lookup when enabled. EpisodeOnly skips the listing.
func (r *Runner) resolveProgram(ctx context.Context, reg *broadcast.Registry, id broadcast.ID, searchTitle, normalized string, hint normalize.DateHint) (schedule.Match, bool, broadcast.ID) {
	cfg := r.Cfg
	var match schedule.Match
	matched := false

	if !cfg.EpisodeOnly && searchTitle != "" {
		if hint.WindowDays > 1 {
			r.Log.Info("no date in filename, searching back %d days from file time", hint.WindowDays)
		}
		anchor := "end"
		if hint.AnchoredAtStart {
			anchor = "start"
		}
		r.Log.Info("searching %q nearest to %s (%s time)",
			searchTitle, hint.Target.Format("2006-01-02 15:04"), anchor)

		windowStart := hint.Target.AddDate(0, 0, -hint.WindowDays)
		body, err := r.Client.Listing(ctx, windowStart, hint.WindowDays+1)
		if err != nil {
			r.Log.Error("%v", err)
		} else {
			var alias string
			if b, ok := reg.Get(id); ok {
				alias = b.Alias
			}
			match, matched = schedule.MatchListing(schedule.ParseListing(body), schedule.Query{
				SearchTitle:  searchTitle,
				ChannelAlias: alias,
				Hint:         hint,
			})
			if matched && id == broadcast.Unknown {
				id = reg.ByAlias(match.Channel)
			}
		}
	}

	if !matched && (cfg.EpisodeSearch || cfg.EpisodeOnly) {
		r.Log.Info("trying episode-number lookup")
		res := &episode.Resolver{
			Client: r.Client,
			Cache:  episode.NewCache(r.Fs, cfg.DataFile(config.CacheFile)),
			Log:    r.Log,
		}
		m, newID, err := res.Resolve(ctx, normalized, id, reg)
		if err != nil {
			r.Log.Warn("episode lookup failed: %v", err)
		} else {
			match, matched, id = m, true, newID
		}
	}
	return match, matched, id
}

// leadingToken cuts the title at the first separator past position 1, the
// forced-rename stand-in for a resolved program title.
func leadingToken(normalized string) string {
	rs := []rune(normalized)
	for i := 1; i < len(rs); i++ {
		if rs[i] == normalize.Sep {
			if i > 1 {
				return string(rs[:i])
			}
			break
		}
	}
	return normalized
}

// fullDestPath anchors a rendered path: UNC and drive-letter paths stand
// alone, rooted paths inherit the source's drive, and relative paths land
// next to the source file.
func fullDestPath(dst, srcPath, srcDir string) string {
	if strings.HasPrefix(dst, `\\`) {
		return dst
	}
	if hasDrive(dst) {
		return dst
	}
	if strings.HasPrefix(dst, string(os.PathSeparator)) {
		if hasDrive(srcPath) {
			return srcPath[:2] + dst
		}
		return dst
	}
	return filepath.Join(srcDir, dst)
}

func hasDrive(s string) bool {
	return len(s) >= 2 && s[1] == ':'
}
