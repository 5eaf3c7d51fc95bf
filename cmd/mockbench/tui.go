package main

import (
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/cmd/mockbench/tui"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/stream"
)

var tuiPageSize int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive console for browsing the mock backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logChan := make(chan string, 256)
		streamer := stream.NewChanStreamer(1024)
		a, err := newApp(cfg, appOptions{
			logWriter: &tui.ChannelWriter{Ch: logChan},
			streamer:  streamer,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		m := tui.NewModel(a.svc, tui.Session{
			Seed:       cfg.SeedValue(),
			Size:       cfg.Dataset.Size,
			ColumnSize: cfg.Dataset.ColumnSize,
			Mode:       cfg.Mode,
			PageSize:   tuiPageSize,
		}, logChan, streamer.C())

		p := bubbletea.NewProgram(m, bubbletea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().IntVar(&tuiPageSize, "page-size", 20, "rows per page")
}
