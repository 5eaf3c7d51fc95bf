package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

var (
	genProfile  string
	genDataset  string
	genPage     int
	genPageSize int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print generated pages as JSON",
	Long: `Without --profile, prints one page of the configured dataset.
With --profile, replays every query of a benchmark profile in order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		profile, err := genTarget(cfg)
		if err != nil {
			return err
		}
		a, err := newApp(cfg, appOptions{logWriter: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		defer a.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		for i, q := range profile.Queries {
			page, err := replayQuery(cmd.Context(), a.svc, profile, q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			if err := enc.Encode(page); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	f := genCmd.Flags()
	f.StringVarP(&genProfile, "profile", "p", "", "benchmark profile (JSON) to replay")
	f.StringVar(&genDataset, "dataset", string(types.ProfileInventory), "inventory or exceptions")
	f.IntVar(&genPage, "page", 1, "page number")
	f.IntVar(&genPageSize, "page-size", 50, "rows per page")
}

// genTarget turns the flags into a profile so both paths replay the same way.
func genTarget(cfg config.YAMLConfig) (types.BenchProfile, error) {
	if genProfile != "" {
		return (&config.ConfigImpl{}).LoadProfile(genProfile)
	}
	seed := cfg.SeedValue()
	p := types.BenchProfile{
		Name:       "cli",
		Seed:       &seed,
		Mode:       cfg.Mode,
		Dataset:    types.ProfileDataset(genDataset),
		Size:       cfg.Dataset.Size,
		ColumnSize: cfg.Dataset.ColumnSize,
		Queries:    []types.Query{{Page: genPage, PageSize: genPageSize}},
	}
	p.ApplyDefaults()
	return p, p.Validate()
}

func replayQuery(ctx context.Context, svc *mockapi.Service, p types.BenchProfile, q types.Query) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	params := mockapi.DatasetParams{
		Query:      q,
		Seed:       *p.Seed,
		Size:       p.Size,
		ColumnSize: p.ColumnSize,
		Mode:       p.Mode,
	}
	if p.Dataset == types.ProfileExceptions {
		return svc.FetchExceptions(ctx, params)
	}
	return svc.FetchInventory(ctx, params)
}
