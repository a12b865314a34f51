package util

import "strings"

// Humanize replaces underscores with spaces so technical identifiers read
// as prose, e.g. "business_application" becomes "business application".
func Humanize(value string) string {
	return strings.ReplaceAll(value, "_", " ")
}

// JoinOrDefault joins items with ", ", falling back to the given literal
// when the list is empty.
func JoinOrDefault(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// VisibilityWord renders a visibility flag as prose.
func VisibilityWord(visible bool) string {
	if visible {
		return "visible"
	}
	return "not visible"
}

// PublicityWord renders a publicity flag as prose.
func PublicityWord(public bool) string {
	if public {
		return "public"
	}
	return "private"
}
