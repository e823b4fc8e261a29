// Package skin holds the per-session style slots. Every slot is
// independently nullable: nil means "use the built-in default". All
// writes go through the style validators and fail closed, so a rejected
// value clears the slot instead of leaving a stale or unsafe one behind.
package skin

import "github.com/JasminDreasond/Tiny-Dices/internal/style"

// Defaults are the built-in style values used when a slot is unset.
// They live apart from user overrides so resetting a slot never needs to
// remember what the original value was.
type Defaults struct {
	Background          string
	Text                string
	Border              string
	BackgroundImage     string
	SelectionBackground string
	SelectionText       string
}

// BuiltIn returns the stock cube look.
func BuiltIn() Defaults {
	return Defaults{
		Background:          "#222222",
		Text:                "#f5f5f5",
		Border:              "2px solid #444444",
		SelectionBackground: "#b2b2ff",
		SelectionText:       "#000000",
	}
}

// Resolved is a fully materialized skin with defaults filled in, ready
// for a rendering surface.
type Resolved struct {
	Background          string
	Text                string
	Border              string
	BackgroundImage     string
	SelectionBackground string
	SelectionText       string
}

// State is the set of user skin overrides for one dice session.
type State struct {
	background          *string
	text                *string
	border              *string
	backgroundImage     *string
	selectionBackground *string
	selectionText       *string
}

// NewState creates a skin state with every slot unset.
func NewState() *State {
	return &State{}
}

// SetBackground stores a cube background, accepting solid colors and
// linear gradients. Returns whether the value was accepted; a rejected
// value clears the slot.
func (s *State) SetBackground(value string) bool {
	return setSlot(&s.background, value, backgroundValid)
}

// SetText stores the cube text color.
func (s *State) SetText(value string) bool {
	return setSlot(&s.text, value, style.IsColor)
}

// SetBorder stores the cube border shorthand.
func (s *State) SetBorder(value string) bool {
	return setSlot(&s.border, value, style.IsBorder)
}

// SetBackgroundImage stores a cube background image. Only base64 data
// URIs pass unless the caller explicitly opts in to unsafe URLs.
func (s *State) SetBackgroundImage(value string, forceUnsafe bool) bool {
	return setSlot(&s.backgroundImage, value, func(v string) bool {
		return style.IsDataImageURI(v, forceUnsafe)
	})
}

// SetSelectionBackground stores the text-selection background.
func (s *State) SetSelectionBackground(value string) bool {
	return setSlot(&s.selectionBackground, value, backgroundValid)
}

// SetSelectionText stores the text-selection text color.
func (s *State) SetSelectionText(value string) bool {
	return setSlot(&s.selectionText, value, style.IsColor)
}

// Background returns the override and whether one is set.
func (s *State) Background() (string, bool) { return getSlot(s.background) }

// Text returns the override and whether one is set.
func (s *State) Text() (string, bool) { return getSlot(s.text) }

// Border returns the override and whether one is set.
func (s *State) Border() (string, bool) { return getSlot(s.border) }

// BackgroundImage returns the override and whether one is set.
func (s *State) BackgroundImage() (string, bool) { return getSlot(s.backgroundImage) }

// SelectionBackground returns the override and whether one is set.
func (s *State) SelectionBackground() (string, bool) { return getSlot(s.selectionBackground) }

// SelectionText returns the override and whether one is set.
func (s *State) SelectionText() (string, bool) { return getSlot(s.selectionText) }

// Clear unsets every slot.
func (s *State) Clear() {
	*s = State{}
}

// Resolve fills unset slots from the given defaults.
func (s *State) Resolve(d Defaults) Resolved {
	return Resolved{
		Background:          orDefault(s.background, d.Background),
		Text:                orDefault(s.text, d.Text),
		Border:              orDefault(s.border, d.Border),
		BackgroundImage:     orDefault(s.backgroundImage, d.BackgroundImage),
		SelectionBackground: orDefault(s.selectionBackground, d.SelectionBackground),
		SelectionText:       orDefault(s.selectionText, d.SelectionText),
	}
}

// backgroundValid accepts a solid color or a linear gradient.
func backgroundValid(v string) bool {
	return style.IsColor(v) || style.IsLinearGradient(v)
}

// setSlot is the fail-closed write path: an empty value unsets the slot
// deliberately, an invalid one unsets it as the rejection fallback.
func setSlot(slot **string, value string, valid func(string) bool) bool {
	if value == "" {
		*slot = nil
		return true
	}

	if !valid(value) {
		*slot = nil
		return false
	}

	v := value
	*slot = &v
	return true
}

func getSlot(slot *string) (string, bool) {
	if slot == nil {
		return "", false
	}
	return *slot, true
}

func orDefault(slot *string, def string) string {
	if slot == nil {
		return def
	}
	return *slot
}
