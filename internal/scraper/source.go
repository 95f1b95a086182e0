// Package scraper produces post records for a profile URL. The simulated
// source stands in for a real scraper; swapping in one only requires
// implementing Source, the analyzer and store never know the difference.
package scraper

import (
	"context"
	"strings"

	"github.com/linkedlens/linkedlens/internal/models"
)

// Source produces a profile snapshot with its current post batch
type Source interface {
	ScrapeProfile(ctx context.Context, profileURL string) (*models.Profile, error)
}

// UsernameFromURL extracts the profile handle from a LinkedIn profile URL,
// e.g. "https://linkedin.com/in/jane-doe/" -> "jane-doe"
func UsernameFromURL(profileURL string) string {
	trimmed := strings.TrimRight(profileURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}

// DisplayName derives a human-readable name from a profile handle,
// e.g. "jane-doe" -> "Jane Doe"
func DisplayName(username string) string {
	parts := strings.Split(username, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
