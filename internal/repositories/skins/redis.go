package skins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
)

const presetIndexKey = "skins"

// Data is the Redis wire form of a preset
type Data struct {
	Name                string    `json:"name"`
	Background          string    `json:"background,omitempty"`
	Text                string    `json:"text,omitempty"`
	Border              string    `json:"border,omitempty"`
	BackgroundImage     string    `json:"background_image,omitempty"`
	SelectionBackground string    `json:"selection_background,omitempty"`
	SelectionText       string    `json:"selection_text,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type redisRepo struct {
	client       *redis.Client
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed preset repository
func NewRedis(redisClient *redis.Client, timeProvider TimeProvider) Repository {
	return &redisRepo{
		client:       redisClient,
		timeProvider: timeProvider,
	}
}

func presetKey(name string) string {
	return fmt.Sprintf("skin:%s", name)
}

func (r *redisRepo) Set(ctx context.Context, preset *Preset) error {
	if preset == nil {
		return errors.New("preset cannot be nil")
	}
	if preset.Name == "" {
		return errors.New("preset name cannot be empty")
	}

	now := r.timeProvider.Now()
	if preset.CreatedAt.IsZero() {
		preset.CreatedAt = now
	}
	preset.UpdatedAt = now

	data := Data{
		Name:                preset.Name,
		Background:          preset.Background,
		Text:                preset.Text,
		Border:              preset.Border,
		BackgroundImage:     preset.BackgroundImage,
		SelectionBackground: preset.SelectionBackground,
		SelectionText:       preset.SelectionText,
		CreatedAt:           preset.CreatedAt,
		UpdatedAt:           preset.UpdatedAt,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal preset data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, presetKey(preset.Name), string(jsonData), 0)
	pipe.SAdd(ctx, presetIndexKey, preset.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set preset in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, name string) (*Preset, error) {
	jsonData, err := r.client.Get(ctx, presetKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, dicerr.NotFoundf("skin preset '%s' not found", name)
		}
		return nil, fmt.Errorf("failed to get preset from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset data: %w", err)
	}

	return toPreset(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, name string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, presetKey(name))
	pipe.SRem(ctx, presetIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete preset from Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*Preset, error) {
	names, err := r.client.SMembers(ctx, presetIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list presets from Redis: %w", err)
	}

	var mu sync.Mutex
	presets := make([]*Preset, 0, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			preset, err := r.Get(gctx, name)
			if err != nil {
				// The index can briefly outlive a deleted preset
				if dicerr.IsNotFound(err) {
					return nil
				}
				return err
			}

			mu.Lock()
			presets = append(presets, preset)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets, nil
}

func toPreset(data *Data) *Preset {
	return &Preset{
		Name:                data.Name,
		Background:          data.Background,
		Text:                data.Text,
		Border:              data.Border,
		BackgroundImage:     data.BackgroundImage,
		SelectionBackground: data.SelectionBackground,
		SelectionText:       data.SelectionText,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
