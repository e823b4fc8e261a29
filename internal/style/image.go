package style

import (
	"regexp"
	"strings"
)

// Inline images are restricted to base64 data URIs of known raster
// formats; the payload may only use the base64 alphabet.
var dataImageRe = regexp.MustCompile(`(?i)^data:image/(?:png|jpeg|jpg|gif|webp);base64,[A-Za-z0-9+/]+={0,2}$`)

// IsDataImageURI reports whether the value is a safe inline image URI.
// forceUnsafe bypasses the check entirely for callers that explicitly
// opt in to non-data URLs; it must never be a default.
func IsDataImageURI(value string, forceUnsafe bool) bool {
	if forceUnsafe {
		return true
	}

	return dataImageRe.MatchString(strings.TrimSpace(value))
}
