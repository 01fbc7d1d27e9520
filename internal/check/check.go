// Package check provides environment diagnostics (--check mode): presence
// and health of the recname.* data files and reachability of the schedule
// service.
package check

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"github.com/harunatsu/recname/internal/broadcast"
	"github.com/harunatsu/recname/internal/config"
	"github.com/harunatsu/recname/internal/episode"
	"github.com/harunatsu/recname/internal/schedule"
	"github.com/harunatsu/recname/internal/subst"
)

// Logger is the subset of the logging package used by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck reports on each data file and on the schedule service. It is
// informational only and does not stop on failure.
func RunCheck(ctx context.Context, cfg *config.Config, fsys afero.Fs, log Logger) {
	log.Info("=== Environment Check ===")

	checkBroadcasters(cfg, fsys, log)
	checkReplaceRules(cfg, fsys, log)
	checkExclusions(cfg, fsys, log)
	checkCache(cfg, fsys, log)
	checkService(ctx, cfg, log)
}

func checkBroadcasters(cfg *config.Config, fsys afero.Fs, log Logger) {
	path := cfg.DataFile(config.BroadcasterFile)
	reg, err := broadcast.LoadRegistry(fsys, path)
	if err != nil {
		log.Error("%s: %v", config.BroadcasterFile, err)
		return
	}
	if reg.Len() == 0 {
		log.Warn("%s: no broadcasters defined (%s)", config.BroadcasterFile, path)
		return
	}
	log.Success("%s: %d broadcasters", config.BroadcasterFile, reg.Len())
}

func checkReplaceRules(cfg *config.Config, fsys afero.Fs, log Logger) {
	for _, name := range []string{config.PreReplaceFile, config.PostReplaceFile} {
		rules, err := subst.LoadTable(fsys, cfg.DataFile(name))
		if err != nil {
			log.Error("%s: %v", name, err)
			continue
		}
		if rules == nil {
			log.Info("%s: not present (optional)", name)
			continue
		}
		log.Success("%s: %d rules", name, len(rules))
	}
}

func checkExclusions(cfg *config.Config, fsys afero.Fs, log Logger) {
	exc, err := subst.LoadExclusions(fsys, cfg.DataFile(config.ExcludeFile))
	if err != nil {
		log.Error("%s: %v", config.ExcludeFile, err)
		return
	}
	if exc == nil {
		log.Info("%s: not present (optional)", config.ExcludeFile)
		return
	}
	log.Success("%s: %d patterns", config.ExcludeFile, len(exc))
}

func checkCache(cfg *config.Config, fsys afero.Fs, log Logger) {
	cache := episode.NewCache(fsys, cfg.DataFile(config.CacheFile))
	n := cache.Len()
	if n == 0 {
		log.Info("%s: empty (filled on demand)", config.CacheFile)
		return
	}
	log.Success("%s: %d cached program ids", config.CacheFile, n)
}

// checkService fetches a one-day listing for today to prove the service
// answers.
func checkService(ctx context.Context, cfg *config.Config, log Logger) {
	client := schedule.NewClient(cfg.ServiceURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	body, err := client.Listing(ctx, time.Now(), 1)
	if err != nil {
		log.Error("schedule service: %v", err)
		return
	}
	entries := schedule.ParseListing(body)
	log.Success("schedule service: reachable (%d entries today)", len(entries))
}
