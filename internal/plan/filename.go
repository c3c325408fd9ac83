// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"regexp"
	"strconv"
	"strings"
)

// Ext is the extension of every output file.
const Ext = ".pdf"

var (
	unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	partSuffix  = regexp.MustCompile(`_part(\d+)of(\d+)\.pdf$`)
)

// SanitizeFilename replaces characters that are invalid in file names on
// common filesystems with '_'. An empty name becomes "Unknown".
func SanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

// ParsePart extracts the part index and count from a multi-part file name.
// It reports false for single-file names.
func ParsePart(filename string) (index, count int, ok bool) {
	m := partSuffix.FindStringSubmatch(filename)
	if m == nil {
		return 0, 0, false
	}
	index, err1 := strconv.Atoi(m[1])
	count, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || index < 1 || index > count {
		return 0, 0, false
	}
	return index, count, true
}
