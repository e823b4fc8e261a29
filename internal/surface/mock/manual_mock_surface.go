package mocksurface

import (
	"fmt"
	"sync"

	"github.com/JasminDreasond/Tiny-Dices/internal/surface"
)

// ManualMockSurface implements surface.Surface for testing, recording
// every call so tests can assert on what the session delegated.
type ManualMockSurface struct {
	mu       sync.Mutex
	next     int
	attached map[surface.Handle]surface.Face
	stopped  []surface.Handle
	removed  int

	// AttachErr, when set, is returned by the next AttachFace call
	AttachErr error
}

// NewManualMockSurface creates a new recording surface
func NewManualMockSurface() *ManualMockSurface {
	return &ManualMockSurface{
		attached: make(map[surface.Handle]surface.Face),
	}
}

// AttachFace implements surface.Surface.AttachFace
func (m *ManualMockSurface) AttachFace(face surface.Face) (surface.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AttachErr != nil {
		err := m.AttachErr
		m.AttachErr = nil
		return "", err
	}

	m.next++
	handle := surface.Handle(fmt.Sprintf("face-%d", m.next))
	m.attached[handle] = face
	return handle, nil
}

// StopSpin implements surface.Surface.StopSpin
func (m *ManualMockSurface) StopSpin(handle surface.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = append(m.stopped, handle)
}

// RemoveAll implements surface.Surface.RemoveAll
func (m *ManualMockSurface) RemoveAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached = make(map[surface.Handle]surface.Face)
	m.removed++
}

// Attached returns the currently attached faces
func (m *ManualMockSurface) Attached() map[surface.Handle]surface.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[surface.Handle]surface.Face, len(m.attached))
	for h, f := range m.attached {
		out[h] = f
	}
	return out
}

// Stopped returns every handle StopSpin was called with
func (m *ManualMockSurface) Stopped() []surface.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]surface.Handle(nil), m.stopped...)
}

// RemoveAllCalls returns how many times RemoveAll was called
func (m *ManualMockSurface) RemoveAllCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removed
}
