// Package crossref provides a minimal client for the Crossref works API.
package crossref

import (
	"strconv"
	"strings"
)

// Work is the subset of a Crossref work record the watcher compares
// against. Title and container-title arrive as arrays; the first element
// is the one that matters.
type Work struct {
	Title          []string  `json:"title"`
	ContainerTitle []string  `json:"container-title"`
	Volume         string    `json:"volume"`
	Issue          string    `json:"issue"`
	Page           string    `json:"page"`
	URL            string    `json:"URL"`
	Issued         DateParts `json:"issued"`
}

// DateParts is Crossref's nested date representation:
// {"date-parts": [[2023, 6, 1]]}.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// FirstTitle returns the work's primary title, trimmed.
func (w *Work) FirstTitle() string { return first(w.Title) }

// ContainerName returns the journal/venue name, trimmed.
func (w *Work) ContainerName() string { return first(w.ContainerTitle) }

// IssuedYear returns the issue year as a string, or "" when Crossref has
// no usable date-parts.
func (w *Work) IssuedYear() string {
	dp := w.Issued.DateParts
	if len(dp) == 0 || len(dp[0]) == 0 || dp[0][0] == 0 {
		return ""
	}
	return strconv.Itoa(dp[0][0])
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return strings.TrimSpace(v[0])
}
