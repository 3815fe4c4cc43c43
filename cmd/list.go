package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/ytscribe/internal/display"
	"github.com/grovetools/ytscribe/internal/store"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List previously downloaded transcripts",
		Long:  "List transcripts recorded in the download index, most recent first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.IndexDB == "-" {
				return fmt.Errorf("the download index is disabled in the config (index_db: \"-\")")
			}

			s, err := store.Open(cfg.IndexDB)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.List(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No downloaded transcripts found.")
				return nil
			}

			if jsonOutput {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling records: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				display.PrintRecordsTable(cmd.OutOrStdout(), records)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many records (0 = all)")

	return cmd
}
