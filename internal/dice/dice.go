// Package dice implements the roll and face-assignment engine: bounded
// pseudo-random results, roll-config normalization, and the six-face
// sequence builder with its duplicate-avoidance and wraparound policy.
package dice

import (
	"math"
	"strconv"
	"strings"

	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
)

var defaultRoller = NewRandomRoller(nil)

// RollNumber rolls a single bounded value using the package-level roller.
// The bound is accepted as a float so callers handing over unchecked user
// input get a loud error for NaN and infinities instead of a silent cast.
func RollNumber(max float64, canZero bool) (int, error) {
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return 0, dicerr.InvalidBoundf("die bound must be a finite number, got %v", max)
	}

	return defaultRoller.RollNumber(int(max), canZero)
}

// ParseRollConfig normalizes heterogeneous roll input into an ordered list
// of per-die bounds. Text input is split on commas and parsed per token; a
// token that fails to parse or is negative becomes the -1 sentinel at its
// position so malformed entries stay detectable downstream. A prebuilt
// []int passes through unchanged, and any other shape yields an empty
// list. Parsing never fails, it degrades per token.
func ParseRollConfig(input any) []int {
	switch v := input.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return []int{}
		}

		tokens := strings.Split(v, ",")
		bounds := make([]int, len(tokens))
		for i, token := range tokens {
			n, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil || n < 0 {
				bounds[i] = -1
				continue
			}
			bounds[i] = n
		}
		return bounds
	case []int:
		return v
	default:
		return []int{}
	}
}
