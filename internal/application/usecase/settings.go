package usecase

import (
	"context"
	"fmt"

	"vitrine/internal/domain/model"
	"vitrine/internal/domain/repository/database"
)

// Settings reads and replaces the per-page singleton documents holding text
// overrides. Values are passed through opaquely.
type Settings struct {
	store database.Store
}

func NewSettings(store database.Store) *Settings {
	return &Settings{store: store}
}

// Get returns the stored values for page, or an empty map when the page has
// none yet.
func (s *Settings) Get(ctx context.Context, page string) (map[string]any, error) {
	if page == "" {
		return nil, fmt.Errorf("%w: empty page", ErrValidation)
	}

	values := make(map[string]any)

	found, err := s.store.Get(ctx, model.SettingsCollection, page, &values)
	if err != nil {
		return nil, fmt.Errorf("get settings/%s: %w", page, err)
	}
	if !found {
		return map[string]any{}, nil
	}
	delete(values, "_id")

	return values, nil
}

// Put replaces the page's values wholesale.
func (s *Settings) Put(ctx context.Context, page string, values map[string]any) error {
	if page == "" {
		return fmt.Errorf("%w: empty page", ErrValidation)
	}

	if err := s.store.Upsert(ctx, model.SettingsCollection, page, values); err != nil {
		return fmt.Errorf("put settings/%s: %w", page, err)
	}

	return nil
}
