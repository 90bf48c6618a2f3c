package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/PopFlamingo/TelegramStats/config"
	"github.com/PopFlamingo/TelegramStats/filter"
	"github.com/PopFlamingo/TelegramStats/render"
	"github.com/PopFlamingo/TelegramStats/stats"
)

var activityCmd = &cobra.Command{
	Use:   "activity [export file]",
	Short: "Show an hourly activity histogram for a chat export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadActivity(cmd, args[0])
		if err != nil {
			return err
		}

		logger, cleanup, err := setupLogger(cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = cleanup()
		}()
		slog.SetDefault(logger)

		archive, err := readArchive(cfg.ExportPath, logger)
		if err != nil {
			return err
		}

		filterOpts := filter.Options{
			From:  cfg.From,
			Start: cfg.StartDate,
			End:   cfg.EndDate,
		}
		messages, err := filter.New(filterOpts).Apply(archive.Messages)
		if err != nil {
			return err
		}

		activity, err := stats.CountHourly(messages, stats.ActivityOptions{
			Timezone: cfg.Timezone,
			Scale:    cfg.Scale,
		})
		if err != nil {
			return err
		}

		logger.Debug("hourly activity computed", "messages", activity.Total, "timezone", cfg.Timezone)

		return render.New(cmd.OutOrStdout(), !cfg.NoColor).Histogram(activity)
	},
}

func init() {
	config.RegisterActivityFlags(activityCmd)
	rootCmd.AddCommand(activityCmd)
}
