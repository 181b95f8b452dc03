package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/loader"
	"github.com/ayomide-cmd/folio/internal/logging"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Walk through the portfolio without the TUI",
	Long:  "Runs the loading sequence, explores the projects in order, and prints each milestone. Stops early with --explore to show the unfinished-mission nudge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("explore")

		log, err := logging.NewStderr(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		portfolio, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load portfolio: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runTour(ctx, cmd.OutOrStdout(), tourOptions{
			Catalog: portfolio.Catalog(),
			Loader:  cfg.Loader(),
			Limit:   limit,
			Skip:    cfg.SkipIntro,
			Logger:  log,
		})
	},
}

func init() {
	tourCmd.Flags().Int("explore", -1, "Explore only the first N projects (default all)")
}

type tourOptions struct {
	Catalog *catalog.Catalog
	Loader  loader.Config
	Limit   int // negative explores everything
	Skip    bool
	Logger  *zap.Logger
}

// runTour drives the loader and the exploration tracker without a terminal UI.
func runTour(ctx context.Context, w io.Writer, opts tourOptions) error {
	if !opts.Skip {
		seq := loader.New(opts.Loader)
		err := loader.Run(ctx, seq, loader.Hooks{
			OnTick: func(v int) {
				if v%25 == 0 {
					fmt.Fprintf(w, "loading %3d%%\n", v)
				}
			},
			OnComplete: func() {
				fmt.Fprintln(w, "loaded")
			},
		})
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
	}

	tracker := explore.NewTracker(opts.Catalog, opts.Logger)
	ids := append(opts.Catalog.PrimaryIDs(), opts.Catalog.SecondaryIDs()...)
	if opts.Limit >= 0 && opts.Limit < len(ids) {
		ids = ids[:opts.Limit]
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		milestones := tracker.Activate(id)
		s := tracker.State()
		fmt.Fprintf(w, "explored %-16s %d/%d %3.0f%%\n", id, s.Count(), s.Total(), s.ProgressRatio()*100)
		printMilestones(w, milestones)
	}

	printMilestones(w, tracker.LeaveSection())
	s := tracker.State()
	switch {
	case s.MissionComplete():
		fmt.Fprintln(w, "mission complete: full portfolio unlocked")
	case s.NudgeVisible():
		fmt.Fprintln(w, "unfinished mission above")
	}
	return nil
}

func printMilestones(w io.Writer, milestones []explore.Milestone) {
	for _, m := range milestones {
		fmt.Fprintf(w, "  milestone: %s\n", m)
	}
}
