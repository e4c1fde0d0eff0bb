package codec

import (
	"fmt"
	"strings"
)

// ExportFilename builds the suggested filename for an export payload:
// character-{sanitized-name}-{timestamp}.json. The timestamp is
// milliseconds since epoch.
func ExportFilename(name string, timestampMillis int64) string {
	return fmt.Sprintf("character-%s-%d.json", SanitizeName(name), timestampMillis)
}

// SanitizeName reduces a character name to a filename-safe slug: every
// run of characters outside [A-Za-z0-9-] becomes a single dash, leading
// and trailing dashes are trimmed, and an empty result falls back to
// "unnamed".
func SanitizeName(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		safe := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if safe {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	sanitized := strings.Trim(b.String(), "-")
	if sanitized == "" {
		return "unnamed"
	}
	return sanitized
}
