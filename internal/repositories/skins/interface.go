// Package skins stores named skin presets so a widget's look can be
// saved and reapplied. Presets are plain strings; they pass through the
// session's validating setters on application, never straight to a
// surface.
package skins

import (
	"context"
	"time"
)

// Preset is a named set of skin slot values. Empty fields leave the
// corresponding slot at its default.
type Preset struct {
	Name                string
	Background          string
	Text                string
	Border              string
	BackgroundImage     string
	SelectionBackground string
	SelectionText       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Repository defines the interface for skin preset storage
type Repository interface {
	Set(ctx context.Context, preset *Preset) error
	Get(ctx context.Context, name string) (*Preset, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Preset, error)
}
