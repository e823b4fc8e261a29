package skins

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/JasminDreasond/Tiny-Dices/internal/repositories/skins TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type clock struct{}

func (clock) Now() time.Time {
	return time.Now().UTC()
}

// NewClock returns the wall-clock TimeProvider
func NewClock() TimeProvider {
	return clock{}
}
