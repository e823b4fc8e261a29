package skin_test

import (
	"testing"

	"github.com/JasminDreasond/Tiny-Dices/internal/skin"
	"github.com/stretchr/testify/assert"
)

func TestState_SetBackground(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantOK   bool
		wantSet  bool
		wantBack string
	}{
		{name: "solid color", value: "#112233", wantOK: true, wantSet: true, wantBack: "#112233"},
		{name: "gradient", value: "linear-gradient(135deg, #222, #000)", wantOK: true, wantSet: true, wantBack: "linear-gradient(135deg, #222, #000)"},
		{name: "invalid value rejected", value: "url(http://evil)", wantOK: false, wantSet: false},
		{name: "empty clears", value: "", wantOK: true, wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := skin.NewState()
			assert.Equal(t, tt.wantOK, s.SetBackground(tt.value))

			got, ok := s.Background()
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.wantBack, got)
		})
	}
}

func TestState_RejectionClearsPreviousValue(t *testing.T) {
	s := skin.NewState()

	assert.True(t, s.SetText("red"))
	_, ok := s.Text()
	assert.True(t, ok)

	// Fail closed: the bad write must not leave "red" in place
	assert.False(t, s.SetText("javascript:alert(1)"))
	got, ok := s.Text()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestState_SetBackgroundImage(t *testing.T) {
	s := skin.NewState()

	assert.True(t, s.SetBackgroundImage("data:image/png;base64,QUJD", false))
	got, ok := s.BackgroundImage()
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,QUJD", got)

	assert.False(t, s.SetBackgroundImage("https://example.com/a.png", false))
	_, ok = s.BackgroundImage()
	assert.False(t, ok)

	assert.True(t, s.SetBackgroundImage("https://example.com/a.png", true))
	got, ok = s.BackgroundImage()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", got)
}

func TestState_SetBorder(t *testing.T) {
	s := skin.NewState()

	assert.True(t, s.SetBorder("2px solid black"))
	assert.False(t, s.SetBorder("2 solid black"))

	_, ok := s.Border()
	assert.False(t, ok)
}

func TestState_Resolve(t *testing.T) {
	defaults := skin.BuiltIn()
	s := skin.NewState()

	resolved := s.Resolve(defaults)
	assert.Equal(t, defaults.Background, resolved.Background)
	assert.Equal(t, defaults.Text, resolved.Text)
	assert.Equal(t, defaults.Border, resolved.Border)

	s.SetBackground("#101010")
	s.SetSelectionText("white")

	resolved = s.Resolve(defaults)
	assert.Equal(t, "#101010", resolved.Background)
	assert.Equal(t, "white", resolved.SelectionText)
	assert.Equal(t, defaults.Text, resolved.Text)
}

func TestState_Clear(t *testing.T) {
	s := skin.NewState()
	s.SetBackground("#101010")
	s.SetText("red")

	s.Clear()

	_, ok := s.Background()
	assert.False(t, ok)
	_, ok = s.Text()
	assert.False(t, ok)
}
