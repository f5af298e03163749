package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenaire/site/logging"
)

func newLogsCmd(opts *rootOptions) *cobra.Command {
	var lines int
	var category string
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent entries from the server log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Log.Dir == "" {
				return fmt.Errorf("log.dir is not configured; the server only logs to stdout")
			}
			entries, err := logging.ReadRecent(logFilePath(cfg.Log), lines)
			if err != nil {
				return fmt.Errorf("read logs: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				if category != "" && !strings.EqualFold(e.Category, category) {
					continue
				}
				line := fmt.Sprintf("%s %-5s [%s] %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Category, e.Message)
				if e.RequestID != "" {
					line += " request_id=" + e.RequestID
				}
				if e.Error != "" {
					line += " error=" + e.Error
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to read")
	cmd.Flags().StringVar(&category, "category", "", "only show entries in this category (general, http, contact, relay)")
	return cmd
}
