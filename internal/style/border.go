package style

import (
	"regexp"
	"strings"
)

// The CSS border-style keyword set; anything else is rejected.
var borderStyleKeywords = map[string]struct{}{
	"none":   {},
	"solid":  {},
	"dashed": {},
	"dotted": {},
	"double": {},
	"groove": {},
	"ridge":  {},
	"inset":  {},
	"outset": {},
	"hidden": {},
}

var borderWidthRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?(?:px|em|rem|%)$`)

// IsBorder reports whether the value is a safe border shorthand of the
// form "<width> <style> <color...>". The width needs an explicit unit,
// the style must be a known keyword, and the remaining tokens must form a
// valid color or linear gradient.
func IsBorder(value string) bool {
	tokens := strings.Fields(strings.TrimSpace(value))
	if len(tokens) < 3 {
		return false
	}

	if !borderWidthRe.MatchString(strings.ToLower(tokens[0])) {
		return false
	}

	if _, ok := borderStyleKeywords[strings.ToLower(tokens[1])]; !ok {
		return false
	}

	rest := strings.Join(tokens[2:], " ")
	return IsColor(rest) || IsLinearGradient(rest)
}
