package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/perf"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/recovery"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

var (
	reportRun     string
	reportWarm    int
	reportProfile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise the request journal per endpoint",
	Long: `Reads every journal segment in the configured directory and prints call
counts, failure rates and timings per endpoint.

--warm N first replays the profile from N concurrent workers so the report
has fresh entries to summarise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.Journal.Enabled = true

		if reportWarm > 0 {
			runID, err := warmUp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if reportRun == "" {
				reportRun = runID
			}
		}

		format, err := journal.FormatterByName(cfg.Journal.Formatter)
		if err != nil {
			return err
		}
		u := utils.NewDefaultUtils(cfg.Journal.Dir, utils.ParseLogLevel(cfg.LogLevel), cmd.ErrOrStderr())
		st, err := recovery.RecoverJournal(u, format)
		if err != nil {
			return err
		}

		entries := st.Entries
		if reportRun != "" {
			entries = st.ByRun(reportRun)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "segments=%d open=%d entries=%d last_request_id=%d\n",
			st.Segments, st.OpenSegments, len(entries), st.LastRequestID)
		renderStats(cmd.OutOrStdout(), perf.Summarize(entries))
		return nil
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportRun, "run", "", "only summarise entries of this run id")
	f.IntVar(&reportWarm, "warm", 0, "replay the profile from N workers before reporting")
	f.StringVarP(&reportProfile, "profile", "p", "samples/profile.json", "profile replayed by --warm")
}

// warmUp replays the profile concurrently and returns the run id it wrote.
func warmUp(ctx context.Context, cfg config.YAMLConfig, logWriter io.Writer) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	profile, err := (&config.ConfigImpl{}).LoadProfile(reportProfile)
	if err != nil {
		return "", err
	}
	a, err := newApp(cfg, appOptions{logWriter: logWriter})
	if err != nil {
		return "", err
	}
	defer a.Close()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < reportWarm; w++ {
		g.Go(func() error {
			for _, q := range profile.Queries {
				if _, err := replayQuery(gctx, a.svc, profile, q); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("warm-up failed: %w", err)
	}
	return a.svc.RunID(), nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderStats(w io.Writer, stats []perf.EndpointStats) {
	ms := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("endpoint", "calls", "failed", "fail %", "avg req ms", "max req ms", "avg cpu ms", "max cpu ms").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range append(stats, perf.Total(stats)) {
		t.Row(
			string(s.Endpoint),
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Failures),
			strconv.FormatFloat(s.FailureRate()*100, 'f', 2, 64),
			ms(s.AvgRequestMs), ms(s.MaxRequestMs),
			ms(s.AvgComputeMs), ms(s.MaxComputeMs),
		)
	}
	fmt.Fprintln(w, t.Render())
}
