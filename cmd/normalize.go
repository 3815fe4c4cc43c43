package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/ytscribe/internal/transcript"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var (
		interval int
		output   string
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Re-bucket an existing transcript file",
		Long: "Read a transcript file of \"[MM:SS] text\" lines and re-bucket it into " +
			"fixed-width time windows, merging nearby caption fragments into readable lines.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") {
				cfg.IntervalSeconds = interval
			}

			data, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			entries := transcript.ParseDocument(string(data))
			if len(entries) == 0 {
				return fmt.Errorf("no timestamped lines found in %s", inPath)
			}

			lines, err := transcript.Normalize(entries, cfg.IntervalSeconds)
			if err != nil {
				return err
			}

			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), transcript.RenderLines(lines))
				return nil
			}

			outPath := output
			if outPath == "" {
				outPath = normalizedPath(inPath)
			}
			if err := transcript.WriteNormalizedText(outPath, lines); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"entries": len(entries),
				"lines":   len(lines),
				"path":    outPath,
			}).Info("normalized transcript saved")

			return nil
		},
	}

	cmd.Flags().IntVar(&interval, "interval", transcript.DefaultInterval, "Bucket width in seconds")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <input>_normalized.<ext>)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print to stdout instead of writing a file")

	return cmd
}

// normalizedPath derives "dir/base_normalized.ext" from "dir/base.ext".
func normalizedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_normalized" + ext
}
