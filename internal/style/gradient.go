package style

import (
	"regexp"
	"strings"
)

const (
	gradientPrefix = "linear-gradient("

	// Cap on color stops, matching the widget's render limit
	maxGradientSegments = 50
)

// Substrings that would smuggle executable or remote content into a
// gradient's function arguments.
var forbiddenGradientTokens = []string{
	"url(",
	"expression(",
	"javascript:",
	"<",
	">",
	"data:",
}

var angleRe = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?(?:deg|rad|turn)$`)

// IsLinearGradient reports whether the value is a safe CSS
// linear-gradient: a direction or angle token optionally first, then one
// to fifty segments that each reduce to a valid color.
func IsLinearGradient(value string) bool {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	if !strings.HasPrefix(lower, gradientPrefix) || !strings.HasSuffix(lower, ")") {
		return false
	}

	for _, token := range forbiddenGradientTokens {
		if strings.Contains(lower, token) {
			return false
		}
	}

	inner := v[len(gradientPrefix) : len(v)-1]
	segments := splitTopLevel(inner)
	if len(segments) == 0 {
		return false
	}

	if isDirectionToken(segments[0]) {
		segments = segments[1:]
	}

	if len(segments) < 1 || len(segments) > maxGradientSegments {
		return false
	}

	for _, segment := range segments {
		if !segmentIsColor(segment) {
			return false
		}
	}

	return true
}

// splitTopLevel splits on commas outside nested parentheses, so function
// colors like rgb(0, 0, 0) survive as single segments. Empty segments are
// dropped.
func splitTopLevel(s string) []string {
	var segments []string
	depth := 0
	start := 0

	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if seg := strings.TrimSpace(s[start:i]); seg != "" {
					segments = append(segments, seg)
				}
				start = i + 1
			}
		}
	}

	if seg := strings.TrimSpace(s[start:]); seg != "" {
		segments = append(segments, seg)
	}

	return segments
}

// isDirectionToken accepts "to <word>" directions and bare angle tokens
// like 135deg, 0.5turn or -2rad.
func isDirectionToken(segment string) bool {
	fields := strings.Fields(strings.ToLower(segment))
	if len(fields) == 0 {
		return false
	}

	if fields[0] == "to" {
		return len(fields) >= 2
	}

	return len(fields) == 1 && angleRe.MatchString(fields[0])
}

// segmentIsColor accepts either a bare color or the "color stop%"
// shorthand where only the first whitespace token is the color.
func segmentIsColor(segment string) bool {
	if IsColor(segment) {
		return true
	}

	fields := strings.Fields(segment)
	if len(fields) < 2 {
		return false
	}

	return IsColor(fields[0])
}
