package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/PopFlamingo/TelegramStats/config"
	"github.com/PopFlamingo/TelegramStats/filter"
	"github.com/PopFlamingo/TelegramStats/render"
	"github.com/PopFlamingo/TelegramStats/stats"
)

var wordsCmd = &cobra.Command{
	Use:   "words [export file]",
	Short: "Report word frequencies in a chat export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWords(cmd, args[0])
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

		messages, err := filter.New(filter.Options{From: cfg.From}).Apply(archive.Messages)
		if err != nil {
			return err
		}

		pairs := stats.SortWordCounts(stats.CountWords(messages), cfg.Reverse)
		if cfg.Limit != nil {
			pairs, err = stats.LimitWordCounts(pairs, *cfg.Limit)
			if err != nil {
				return err
			}
		}

		logger.Debug("word frequency computed", "messages", len(messages), "words", len(pairs))

		renderer := render.New(cmd.OutOrStdout(), !cfg.NoColor)
		if cfg.JSON {
			return renderer.WordCountsJSON(pairs)
		}
		return renderer.WordCounts(pairs)
	},
}

func init() {
	config.RegisterWordsFlags(wordsCmd)
	rootCmd.AddCommand(wordsCmd)
}
