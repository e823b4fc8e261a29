package skins

import (
	"context"
	"errors"
	"sort"
	"sync"

	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
)

type inMemoryRepo struct {
	mu           sync.RWMutex
	presets      map[string]*Preset
	timeProvider TimeProvider
}

// NewInMemory creates an in-memory preset repository, used when no Redis
// is configured
func NewInMemory(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewClock()
	}
	return &inMemoryRepo{
		presets:      make(map[string]*Preset),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepo) Set(_ context.Context, preset *Preset) error {
	if preset == nil {
		return errors.New("preset cannot be nil")
	}
	if preset.Name == "" {
		return errors.New("preset name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if preset.CreatedAt.IsZero() {
		preset.CreatedAt = now
	}
	preset.UpdatedAt = now

	copied := *preset
	r.presets[preset.Name] = &copied
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, name string) (*Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, ok := r.presets[name]
	if !ok {
		return nil, dicerr.NotFoundf("skin preset '%s' not found", name)
	}

	copied := *preset
	return &copied, nil
}

func (r *inMemoryRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.presets, name)
	return nil
}

func (r *inMemoryRepo) List(_ context.Context) ([]*Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	presets := make([]*Preset, 0, len(r.presets))
	for _, preset := range r.presets {
		copied := *preset
		presets = append(presets, &copied)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets, nil
}
