package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/ytscribe/internal/display"
	"github.com/grovetools/ytscribe/internal/player"
	"github.com/grovetools/ytscribe/internal/store"
	"github.com/grovetools/ytscribe/internal/transcript"
	"github.com/grovetools/ytscribe/internal/youtube"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	var (
		raw       bool
		interval  int
		language  string
		outputDir string
		formats   []string
		noIndex   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <video-id>",
		Short: "Download and normalize the transcript for a video",
		Long: "Download the caption track for a video, normalize it into fixed-width " +
			"time buckets, and write it to a transcript file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := args[0]

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") {
				cfg.IntervalSeconds = interval
			}
			if cmd.Flags().Changed("lang") {
				cfg.Language = language
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("format") {
				cfg.Formats = formats
			}
			if cfg.IntervalSeconds <= 0 {
				return fmt.Errorf("interval must be positive, got %d", cfg.IntervalSeconds)
			}

			client := youtube.New(
				youtube.WithUserAgent(cfg.UserAgent),
				youtube.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			)

			var selector player.Selector
			if cfg.Language != "" {
				selector = player.PreferLanguage(cfg.Language)
			}

			res, err := client.Transcript(cmd.Context(), videoID, selector)
			switch {
			case errors.Is(err, player.ErrNoCaptions):
				return fmt.Errorf("no captions found for video %s", videoID)
			case errors.Is(err, transcript.ErrEmptyTranscript):
				return fmt.Errorf("caption feed for video %s contained no transcript lines", videoID)
			case err != nil:
				return err
			}

			var lines []transcript.Line
			if !raw {
				lines, err = transcript.Normalize(res.Entries, cfg.IntervalSeconds)
				if err != nil {
					return err
				}
			}

			var txtPath string
			for _, format := range cfg.Formats {
				path := filepath.Join(cfg.OutputDir, fmt.Sprintf("transcript_%s.%s", videoID, format))
				switch format {
				case "txt":
					txtPath = path
					if raw {
						err = transcript.WriteText(path, res.Entries)
					} else {
						err = transcript.WriteNormalizedText(path, lines)
					}
				case "srt":
					err = transcript.WriteSRT(path, res.Entries)
				case "vtt":
					err = transcript.WriteVTT(path, res.Entries)
				default:
					return fmt.Errorf("unknown output format %q (supported: txt, srt, vtt)", format)
				}
				if err != nil {
					return err
				}
				logrus.WithField("path", path).Info("transcript saved")
			}

			out := cmd.OutOrStdout()
			display.PrintHeader(out, res.Details.Title, videoID)
			if raw {
				display.PrintEntries(out, res.Entries)
			} else {
				display.PrintLines(out, lines)
			}

			if !noIndex && cfg.IndexDB != "-" && txtPath != "" {
				if err := indexTranscript(cfg.IndexDB, videoID, txtPath, res, lines, cfg.IntervalSeconds); err != nil {
					// The transcript is already on disk; a broken index is
					// not worth failing the run over.
					logrus.WithError(err).Warn("could not update download index")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Keep one line per caption entry instead of normalizing")
	cmd.Flags().IntVar(&interval, "interval", transcript.DefaultInterval, "Bucket width in seconds for normalization")
	cmd.Flags().StringVar(&language, "lang", "", "Preferred caption language code (falls back to the first track)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to write transcript files to")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "Output formats: txt, srt, vtt (repeatable)")
	cmd.Flags().BoolVar(&noIndex, "no-index", false, "Skip recording this download in the index")

	return cmd
}

func indexTranscript(dbPath, videoID, txtPath string, res *youtube.Result, lines []transcript.Line, interval int) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	abs, err := filepath.Abs(txtPath)
	if err != nil {
		abs = txtPath
	}

	lineCount := len(lines)
	if lineCount == 0 {
		lineCount = len(res.Entries)
	}

	return s.Save(store.Record{
		VideoID:  videoID,
		Title:    res.Details.Title,
		Language: res.Track.LanguageCode,
		Path:     abs,
		Entries:  len(res.Entries),
		Lines:    lineCount,
		Interval: interval,
	})
}
