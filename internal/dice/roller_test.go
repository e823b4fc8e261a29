package dice_test

import (
	"math"
	"testing"

	"github.com/JasminDreasond/Tiny-Dices/internal/dice"
	mockdice "github.com/JasminDreasond/Tiny-Dices/internal/dice/mock"
	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRoller_RollNumber(t *testing.T) {
	roller := dice.NewRandomRoller(&dice.Config{Seed: 42})

	tests := []struct {
		name    string
		max     int
		canZero bool
		wantMin int
		wantMax int
	}{
		{
			name:    "d6",
			max:     6,
			canZero: false,
			wantMin: 1,
			wantMax: 6,
		},
		{
			name:    "d20",
			max:     20,
			canZero: false,
			wantMin: 1,
			wantMax: 20,
		},
		{
			name:    "d6 zero inclusive",
			max:     6,
			canZero: true,
			wantMin: 0,
			wantMax: 6,
		},
		{
			name:    "d1",
			max:     1,
			canZero: false,
			wantMin: 1,
			wantMax: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got, err := roller.RollNumber(tt.max, tt.canZero)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, tt.wantMin)
				assert.LessOrEqual(t, got, tt.wantMax)
			}
		})
	}
}

func TestRandomRoller_RollNumber_DegenerateBounds(t *testing.T) {
	roller := dice.NewRandomRoller(&dice.Config{Seed: 7})

	for _, max := range []int{0, -1, -5} {
		got, err := roller.RollNumber(max, false)
		require.NoError(t, err)
		assert.Equal(t, 0, got)

		got, err = roller.RollNumber(max, true)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	}
}

func TestRandomRoller_RollNumber_CoversRange(t *testing.T) {
	roller := dice.NewRandomRoller(&dice.Config{Seed: 99})

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		got, err := roller.RollNumber(4, true)
		require.NoError(t, err)
		seen[got] = true
	}

	for v := 0; v <= 4; v++ {
		assert.True(t, seen[v], "value %d never rolled", v)
	}
}

func TestRollNumber_InvalidBound(t *testing.T) {
	tests := []struct {
		name string
		max  float64
	}{
		{name: "NaN", max: math.NaN()},
		{name: "positive infinity", max: math.Inf(1)},
		{name: "negative infinity", max: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dice.RollNumber(tt.max, false)
			require.Error(t, err)
			assert.True(t, dicerr.IsInvalidBound(err))
		})
	}
}

func TestRollNumber_FiniteBounds(t *testing.T) {
	got, err := dice.RollNumber(0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = dice.RollNumber(-5, true)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = dice.RollNumber(6, false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 6)
}

func TestManualMockRoller_RollNumber(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 5})

	got, err := roller.RollNumber(6, false)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = roller.RollNumber(6, false)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// Exhausted rolls are an error
	_, err = roller.RollNumber(6, false)
	assert.Error(t, err)
}

func TestManualMockRoller_RollOutOfRange(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7})

	_, err := roller.RollNumber(6, false)
	assert.Error(t, err)

	roller.SetRolls([]int{0})
	_, err = roller.RollNumber(6, false)
	assert.Error(t, err)
}
