package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/recovery"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/stream"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

// loadConfig reads the YAML config, applies flag overrides and validates.
func loadConfig(cmd *cobra.Command) (config.YAMLConfig, error) {
	var cfg config.YAMLConfig
	if configPath != "" {
		var err error
		cfg, err = (&config.ConfigImpl{}).LoadYAML(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	} else {
		cfg.ApplyDefaults()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := seedFlag
		cfg.Seed = &seed
	}
	if flags.Changed("latency-scale") {
		scale := latencyScale
		cfg.Latency.Scale = &scale
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

type appOptions struct {
	logWriter io.Writer
	streamer  stream.EntryStreamer
}

// app wires the journal, the compute actor and the mock service together.
type app struct {
	cfg   config.YAMLConfig
	utils *utils.DefaultUtils
	sys   *actor.System
	svc   *mockapi.Service
}

func newApp(cfg config.YAMLConfig, opt appOptions) (*app, error) {
	journalDir := ""
	if cfg.Journal.Enabled {
		journalDir = cfg.Journal.Dir
	}
	u := utils.NewDefaultUtils(journalDir, utils.ParseLogLevel(cfg.LogLevel), opt.logWriter)
	logger := u.GetLogger()

	ctx := &types.Context{Utils: u}
	sysOpt := &actor.SystemOptional{
		FlushAfterN: cfg.Journal.FlushAfter,
		Streamer:    opt.streamer,
	}

	if cfg.Journal.Enabled {
		format, err := journal.FormatterByName(cfg.Journal.Formatter)
		if err != nil {
			return nil, err
		}
		storeOpts := journal.StorageOptions{Kind: cfg.Journal.Storage, MaxFileSize: cfg.Journal.MaxFileSize}

		st, err := recovery.RecoverJournal(u, format)
		if err != nil {
			return nil, fmt.Errorf("failed to recover journal: %w", err)
		}
		if st.OpenSegments > 0 {
			logger.Warn("journal has segments that were not closed cleanly", "count", st.OpenSegments)
		}

		path, seq, err := u.GenNextJournalPath()
		if err != nil {
			return nil, err
		}
		j, err := journal.Open(path, seq, format, storeOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
		}
		ctx.Journal = j
		sysOpt.LastRequestID = st.LastRequestID
		sysOpt.JournalFactory = func(path string, seqNo uint64) (types.Journal, error) {
			return journal.Open(path, seqNo, format, storeOpts)
		}
		logger.Info("journal opened", "path", path, "last_request_id", st.LastRequestID)
	}

	sys, err := actor.NewSystem(ctx, sysOpt)
	if err != nil {
		return nil, err
	}
	svc, err := mockapi.NewService(&types.Context{Utils: u}, &mockapi.ServiceOptional{
		System:  sys,
		Sleeper: mockapi.SleeperForScale(cfg.LatencyScale()),
	})
	if err != nil {
		sys.Stop()
		return nil, err
	}
	logger.Debug("mock service ready", "run_id", svc.RunID(), "seed", cfg.SeedValue())

	return &app{cfg: cfg, utils: u, sys: sys, svc: svc}, nil
}

// Close stops the actor, which flushes and closes the journal.
func (a *app) Close() {
	a.svc.Close()
	a.sys.Stop()
}
