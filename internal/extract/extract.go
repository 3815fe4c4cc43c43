// Package extract pulls embedded data blobs out of HTML documents using
// marker-delimited substring search. The watch page embeds its player data
// as a JSON assignment inside a script tag whose exact boundary syntax is
// not guaranteed, so a textual anchor is deliberately used instead of an
// HTML parser.
package extract

import (
	"errors"
	"strings"
)

// ErrMarkerNotFound indicates the start marker was absent from the document.
var ErrMarkerNotFound = errors.New("start marker not found in document")

// Default markers for the player response blob on a watch page.
const (
	PlayerResponseStart = "ytInitialPlayerResponse = "
	PlayerResponseEnd   = ";</script>"
)

// Between returns the substring of doc strictly between the end of
// startMarker and the first occurrence of endMarker after it. If the start
// marker is absent it returns ErrMarkerNotFound. If the end marker is
// absent after the start marker, the remainder of the document is returned;
// the page may be truncated or the terminator may have drifted, and the
// downstream JSON parse decides whether the result is usable.
func Between(doc, startMarker, endMarker string) (string, error) {
	start := strings.Index(doc, startMarker)
	if start == -1 {
		return "", ErrMarkerNotFound
	}

	rest := doc[start+len(startMarker):]
	if end := strings.Index(rest, endMarker); end != -1 {
		return rest[:end], nil
	}
	return rest, nil
}

// PlayerResponse extracts the embedded player response blob from a watch
// page using the default markers.
func PlayerResponse(doc string) (string, error) {
	return Between(doc, PlayerResponseStart, PlayerResponseEnd)
}
