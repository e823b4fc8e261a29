package session

import (
	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
	"github.com/JasminDreasond/Tiny-Dices/internal/skin"
)

// Skin setters route every value through the style validators and fail
// closed: a rejected value clears the slot back to the default and the
// call still succeeds. Only post-destroy use is an error.

// SetBgSkin sets the cube background (solid color or linear gradient)
func (s *Session) SetBgSkin(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetBackground(value)
	return nil
}

// SetTextSkin sets the cube text color
func (s *Session) SetTextSkin(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetText(value)
	return nil
}

// SetBorderSkin sets the cube border shorthand
func (s *Session) SetBorderSkin(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetBorder(value)
	return nil
}

// SetBgImgSkin sets the cube background image. forceUnsafe opts in to
// non-data URLs and is never implied.
func (s *Session) SetBgImgSkin(value string, forceUnsafe bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetBackgroundImage(value, forceUnsafe)
	return nil
}

// SetSelectionBgSkin sets the text-selection background
func (s *Session) SetSelectionBgSkin(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetSelectionBackground(value)
	return nil
}

// SetSelectionTextSkin sets the text-selection text color
func (s *Session) SetSelectionTextSkin(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot skin a destroyed session")
	}

	s.skins.SetSelectionText(value)
	return nil
}

// BgSkin returns the background override, if any
func (s *Session) BgSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.Background()
}

// TextSkin returns the text color override, if any
func (s *Session) TextSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.Text()
}

// BorderSkin returns the border override, if any
func (s *Session) BorderSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.Border()
}

// BgImgSkin returns the background image override, if any
func (s *Session) BgImgSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.BackgroundImage()
}

// SelectionBgSkin returns the selection background override, if any
func (s *Session) SelectionBgSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.SelectionBackground()
}

// SelectionTextSkin returns the selection text override, if any
func (s *Session) SelectionTextSkin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.SelectionText()
}

// ResolvedSkin returns the skin a surface would render right now
func (s *Session) ResolvedSkin() skin.Resolved {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skins.Resolve(s.defaults)
}
