// Package player parses the embedded player response blob and locates the
// caption track reference inside it.
package player

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoCaptions indicates the video has no usable caption track. This is an
// expected outcome for caption-less videos, not a defect in the page.
var ErrNoCaptions = errors.New("no captions available for this video")

// Response is the subset of the player response the pipeline navigates.
// The captions subtree is kept raw so a missing or oddly-shaped subtree
// degrades to ErrNoCaptions instead of failing the whole parse.
type Response struct {
	Captions     json.RawMessage `json:"captions"`
	VideoDetails VideoDetails    `json:"videoDetails"`
}

// VideoDetails carries display metadata about the video.
type VideoDetails struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	Author  string `json:"author"`
}

// Track is a single caption track reference.
type Track struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// Parse decodes an extracted player response blob. A parse failure here is
// a hard error: the blob was located but is not the JSON we expected.
func Parse(blob string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(blob), &resp); err != nil {
		return nil, fmt.Errorf("malformed player response: %w", err)
	}
	return &resp, nil
}

// Tracks navigates captions → playerCaptionsTracklistRenderer →
// captionTracks. Any absent or wrong-shaped step yields ErrNoCaptions.
func (r *Response) Tracks() ([]Track, error) {
	if len(r.Captions) == 0 {
		return nil, ErrNoCaptions
	}

	var captions struct {
		Renderer struct {
			Tracks []Track `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}
	if err := json.Unmarshal(r.Captions, &captions); err != nil {
		return nil, ErrNoCaptions
	}
	if len(captions.Renderer.Tracks) == 0 {
		return nil, ErrNoCaptions
	}
	return captions.Renderer.Tracks, nil
}

// Selector picks one track from a non-empty list.
type Selector func(tracks []Track) Track

// FirstTrack selects the first listed track unconditionally.
func FirstTrack(tracks []Track) Track {
	return tracks[0]
}

// PreferLanguage selects the first track whose language code matches code,
// falling back to the first track when nothing matches.
func PreferLanguage(code string) Selector {
	return func(tracks []Track) Track {
		for _, t := range tracks {
			if t.LanguageCode == code {
				return t
			}
		}
		return tracks[0]
	}
}

// SelectTrack applies sel (FirstTrack when nil) and returns the chosen
// track. A selected track without a baseUrl also counts as ErrNoCaptions.
func (r *Response) SelectTrack(sel Selector) (Track, error) {
	tracks, err := r.Tracks()
	if err != nil {
		return Track{}, err
	}
	if sel == nil {
		sel = FirstTrack
	}
	track := sel(tracks)
	if track.BaseURL == "" {
		return Track{}, ErrNoCaptions
	}
	return track, nil
}
