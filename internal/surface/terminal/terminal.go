// Package terminal renders dice as styled boxes on a terminal writer.
// It is a reference Surface implementation; the core never depends on it.
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/JasminDreasond/Tiny-Dices/internal/surface"
)

// Terminal implements surface.Surface by printing each attached die as a
// bordered, skinned cell.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	next  int
	faces map[surface.Handle]surface.Face
}

// New creates a terminal surface writing to w
func New(w io.Writer) *Terminal {
	return &Terminal{
		w:     w,
		faces: make(map[surface.Handle]surface.Face),
	}
}

// AttachFace implements surface.Surface.AttachFace
func (t *Terminal) AttachFace(face surface.Face) (surface.Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	handle := surface.Handle("die-" + strconv.Itoa(t.next))
	t.faces[handle] = face

	if _, err := fmt.Fprintln(t.w, t.render(face)); err != nil {
		delete(t.faces, handle)
		return "", err
	}

	return handle, nil
}

// StopSpin implements surface.Surface.StopSpin by reprinting the die in
// its settled form. Stale handles are ignored.
func (t *Terminal) StopSpin(handle surface.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	face, ok := t.faces[handle]
	if !ok {
		return
	}

	face.Spinning = false
	t.faces[handle] = face
	fmt.Fprintln(t.w, t.render(face))
}

// RemoveAll implements surface.Surface.RemoveAll
func (t *Terminal) RemoveAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.faces = make(map[surface.Handle]surface.Face)
}

func (t *Terminal) render(face surface.Face) string {
	box := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color(face.Skin.Text)).
		Background(lipgloss.Color(face.Skin.Background)).
		BorderForeground(lipgloss.Color(borderColor(face.Skin.Border)))

	label := strconv.Itoa(face.Result)
	if face.Spinning {
		label += " ~"
	}

	return box.Render(label)
}

// borderColor pulls the color tokens out of a CSS border shorthand;
// lipgloss only styles the border color, not its width or line style.
func borderColor(border string) string {
	tokens := strings.Fields(border)
	if len(tokens) < 3 {
		return ""
	}
	return strings.Join(tokens[2:], " ")
}
