package cache

import (
	"context"
	"time"

	"github.com/track-analytics/internal/domain/repository"
)

// noopRepository используется, когда Redis выключен: каждый Get - промах
type noopRepository struct{}

func NewNoopRepository() repository.CacheRepository {
	return noopRepository{}
}

func (noopRepository) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (noopRepository) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopRepository) Delete(context.Context, string) error { return nil }
