package storage

import (
	"context"

	"creatures/internal/model"
)

// Store persists the structural descriptors of creature brains.
type Store interface {
	Init(ctx context.Context) error
	SaveBrain(ctx context.Context, brain model.BrainRecord) error
	GetBrain(ctx context.Context, id string) (model.BrainRecord, bool, error)
	ListBrains(ctx context.Context) ([]string, error)
	DeleteBrain(ctx context.Context, id string) error
}
