// Package youtube fetches watch pages and timed-text feeds and runs the
// extraction pipeline over them.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/grovetools/ytscribe/internal/extract"
	"github.com/grovetools/ytscribe/internal/player"
	"github.com/grovetools/ytscribe/internal/transcript"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultTimeout   = 20 * time.Second

	// Watch pages run to a few MB; anything past this is not a watch page.
	maxBodyBytes = 32 << 20
)

// Client fetches video pages and caption feeds. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the watch-page host. Used by tests to point the
// client at a local server.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each fetch. Both network calls are the pipeline's only
// blocking operations, so they always carry a timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger for advisory progress output.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client with default transport settings.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WatchURL builds the watch-page URL for a video id.
func (c *Client) WatchURL(videoID string) string {
	return fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)
}

// fetch GETs url and returns the body as text. Any transport error or
// non-2xx status is a fetch failure; the caller aborts on it.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// FetchWatchPage fetches the HTML watch page for a video id.
func (c *Client) FetchWatchPage(ctx context.Context, videoID string) (string, error) {
	return c.fetch(ctx, c.WatchURL(videoID))
}

// FetchTimedText fetches a caption feed by its track URL.
func (c *Client) FetchTimedText(ctx context.Context, url string) (string, error) {
	return c.fetch(ctx, url)
}

// Result is a fetched transcript plus the track and video metadata that
// produced it.
type Result struct {
	Entries []transcript.Entry
	Track   player.Track
	Details player.VideoDetails
}

// Transcript runs the full retrieval pipeline for one video: fetch the
// watch page, extract the embedded player data, select a caption track,
// fetch its feed, and parse it into timed entries. sel picks the track
// (player.FirstTrack when nil). Every failure aborts the whole pipeline.
func (c *Client) Transcript(ctx context.Context, videoID string, sel player.Selector) (*Result, error) {
	c.log.WithField("video_id", videoID).Info("fetching video page")
	page, err := c.FetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	c.log.Debug("extracting player data")
	blob, err := extract.PlayerResponse(page)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	resp, err := player.Parse(blob)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	track, err := resp.SelectTrack(sel)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	c.log.WithFields(logrus.Fields{
		"language": track.LanguageCode,
		"kind":     track.Kind,
	}).Info("caption track selected")

	c.log.Info("downloading transcript")
	feed, err := c.FetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	c.log.Debug("parsing transcript data")
	entries, err := transcript.ParseTimedText(feed)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	c.log.WithField("entries", len(entries)).Info("transcript parsed")

	return &Result{
		Entries: entries,
		Track:   track,
		Details: resp.VideoDetails,
	}, nil
}
