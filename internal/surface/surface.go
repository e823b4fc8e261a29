// Package surface defines the capability the dice core needs from a
// rendering layer. The core treats it as an opaque sink: it hands over
// computed faces plus sanitized skin values and keeps only the returned
// handle for bookkeeping.
package surface

//go:generate mockgen -destination=mock/mock_surface.go -package=mocksurface -source=surface.go

import "github.com/JasminDreasond/Tiny-Dices/internal/skin"

// Handle identifies one attached die on a rendering surface.
type Handle string

// Face is everything a surface needs to draw one die.
type Face struct {
	// Result is the front face value, always Sequence[0]
	Result int

	// Sequence holds all six face values
	Sequence []int

	// Skin carries the resolved style values; they have already passed
	// the validators
	Skin skin.Resolved

	// StackOrder is the monotonic priority the session assigns; the
	// surface owns how it maps to visual stacking
	StackOrder int

	// Spinning indicates the die should animate until StopSpin is called
	Spinning bool
}

// Surface is the rendering capability consumed by a dice session.
type Surface interface {
	// AttachFace renders a die and returns an opaque handle for it
	AttachFace(face Face) (Handle, error)

	// StopSpin ends the spin animation for an attached die; unknown or
	// stale handles are a no-op
	StopSpin(handle Handle)

	// RemoveAll clears every attached die
	RemoveAll()
}
