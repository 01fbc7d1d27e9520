// Command recname renames a recorded broadcast after the program it
// contains. It reads the broadcast date and channel out of the filename,
// resolves the program against a schedule service, renders the rename
// template, and moves the file. stdout carries only the resulting path
// (the destination, or the unchanged source when excluded); all
// diagnostics go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/harunatsu/recname/internal/check"
	"github.com/harunatsu/recname/internal/config"
	"github.com/harunatsu/recname/internal/display"
	"github.com/harunatsu/recname/internal/logging"
	"github.com/harunatsu/recname/internal/pipeline"
	"github.com/harunatsu/recname/internal/schedule"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg)
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "recname: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "recname: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recname: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	ctx := context.Background()
	fsys := afero.NewOsFs()

	if cfg.CheckOnly {
		check.RunCheck(ctx, &cfg, fsys, log)
		return 0
	}

	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	runner := &pipeline.Runner{
		Cfg:    &cfg,
		Log:    log,
		Fs:     fsys,
		Client: schedule.NewClient(cfg.ServiceURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second),
	}

	dst, err := runner.Run(ctx)
	return conclude(log, err, cfg.SourcePath, dst)
}

// conclude logs the outcome and maps it to the process exit code. An
// excluded source is a non-failure stop but still exits 1; its unchanged
// path goes to stdout so pipelines reading it keep a usable value.
func conclude(log *logging.Logger, err error, src, dst string) int {
	if err != nil {
		if errors.Is(err, pipeline.ErrExcluded) {
			log.Info("%v", err)
			fmt.Println(src)
			return 1
		}
		log.Error("%v", err)
		return 1
	}
	log.Success("renamed to %s", dst)
	fmt.Println(dst)
	return 0
}
