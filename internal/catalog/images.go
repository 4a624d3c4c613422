package catalog

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/crawlkit/catalogpress/internal/table"
)

// CombineImages collects the image URLs scattered across a raw row into one
// JSON array, iterating imageCols in the fixed order supplied. Values are
// trimmed, blanks dropped, and exact duplicates suppressed with the first
// occurrence winning. Returns the encoded array and the URL count; the array
// is "" (a null cell) when no URLs survive, so image_count resolves to 0
// downstream without a parse step.
func CombineImages(row table.Row, imageCols []string) (string, int) {
	var images []string
	seen := make(map[string]struct{})

	for _, col := range imageCols {
		v, ok := row[col]
		if !ok {
			continue
		}
		url := strings.TrimSpace(v)
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		images = append(images, url)
	}

	if len(images) == 0 {
		return "", 0
	}
	return encodeJSONList(images), len(images)
}

// encodeJSONList marshals without HTML escaping so query separators in URLs
// survive byte-for-byte.
func encodeJSONList(list []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding []string cannot fail.
	_ = enc.Encode(list)
	return strings.TrimRight(buf.String(), "\n")
}
