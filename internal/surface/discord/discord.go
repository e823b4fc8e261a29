// Package discord renders dice as messages in a Discord channel. Like
// the terminal surface it is a thin collaborator; the core only sees the
// surface.Surface interface.
package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/JasminDreasond/Tiny-Dices/internal/surface"
)

// Messenger is the slice of discordgo.Session this surface needs,
// narrowed so tests can fake it.
type Messenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Channel implements surface.Surface on one Discord channel.
type Channel struct {
	mu        sync.Mutex
	session   Messenger
	channelID string
	faces     map[surface.Handle]surface.Face
}

// New creates a Discord surface bound to a channel
func New(session Messenger, channelID string) *Channel {
	return &Channel{
		session:   session,
		channelID: channelID,
		faces:     make(map[surface.Handle]surface.Face),
	}
}

// AttachFace implements surface.Surface.AttachFace; the handle is the
// posted message ID
func (c *Channel) AttachFace(face surface.Face) (surface.Handle, error) {
	msg, err := c.session.ChannelMessageSend(c.channelID, renderContent(face))
	if err != nil {
		return "", fmt.Errorf("failed to post die face: %w", err)
	}

	handle := surface.Handle(msg.ID)

	c.mu.Lock()
	c.faces[handle] = face
	c.mu.Unlock()

	return handle, nil
}

// StopSpin implements surface.Surface.StopSpin by editing the message to
// its settled form. Stale handles are ignored.
func (c *Channel) StopSpin(handle surface.Handle) {
	c.mu.Lock()
	face, ok := c.faces[handle]
	if ok {
		face.Spinning = false
		c.faces[handle] = face
	}
	c.mu.Unlock()

	if !ok {
		return
	}

	// Best effort; a deleted message is not an error worth surfacing
	_, _ = c.session.ChannelMessageEdit(c.channelID, string(handle), renderContent(face))
}

// RemoveAll implements surface.Surface.RemoveAll
func (c *Channel) RemoveAll() {
	c.mu.Lock()
	handles := make([]surface.Handle, 0, len(c.faces))
	for h := range c.faces {
		handles = append(handles, h)
	}
	c.faces = make(map[surface.Handle]surface.Face)
	c.mu.Unlock()

	for _, h := range handles {
		_ = c.session.ChannelMessageDelete(c.channelID, string(h))
	}
}

func renderContent(face surface.Face) string {
	if face.Spinning {
		return fmt.Sprintf("🎲 rolling… **%d**", face.Result)
	}
	return fmt.Sprintf("🎲 **%d**", face.Result)
}
