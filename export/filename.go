package export

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"ytexport/youtube"
)

// maxNameBytes keeps generated names well under the common 255-byte limit
// once ".csv" and a collision suffix are added.
const maxNameBytes = 180

// sanitizeFilename replaces characters that are invalid in filenames on
// common platforms, drops control characters and trims leading/trailing
// spaces and trailing dots.
func sanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteByte('_')
		case unicode.IsControl(r), r == utf8.RuneError:
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	name := strings.TrimRight(strings.TrimSpace(b.String()), ". ")
	return truncateName(name, maxNameBytes)
}

// truncateName cuts s to at most n bytes without splitting a rune.
func truncateName(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimRight(s[:n], ". ")
}

// reservedName reports whether name, ignoring case and any extension, is a
// device name Windows refuses to create as a file.
func reservedName(name string) bool {
	base, _, _ := strings.Cut(strings.ToUpper(name), ".")
	switch strings.TrimRight(base, " ") {
	case "CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9":
		return true
	}
	return false
}

// tableNames picks the item table name (without extension) for each
// playlist. The sanitized title is used when anything is left of it and it
// is not a device name, otherwise the playlist id. Names that collide with an
// earlier one or with the details table, ignoring case, get the playlist id
// appended.
func tableNames(playlists []youtube.Playlist) []string {
	names := make([]string, len(playlists))
	seen := make(map[string]bool, len(playlists)+1)
	seen[strings.ToLower(strings.TrimSuffix(DetailsTable, ".csv"))] = true
	for i, pl := range playlists {
		name := sanitizeFilename(pl.Details.Title)
		if name == "" || reservedName(name) {
			name = sanitizeFilename(pl.ID)
		}
		if seen[strings.ToLower(name)] {
			name = fmt.Sprintf("%s (%s)", name, sanitizeFilename(pl.ID))
		}
		seen[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}
