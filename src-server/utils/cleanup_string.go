package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanupString composes s to NFC and strips surrounding whitespace, so the
// same title typed on two keyboards is stored the same way.
func CleanupString(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
