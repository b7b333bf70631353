package abstraction

import (
	"context"

	"vitrine/internal/domain/model"
)

// Collection is the ordered-collection protocol every list-management feature
// runs through: load by scope, draft, create-or-update, cascade delete.
type Collection[F model.Fields] interface {
	Load(ctx context.Context, scope string) ([]model.Record[F], error)
	CreateDraft(ctx context.Context, scope string, defaults F) (model.Record[F], error)
	Save(ctx context.Context, rec model.Record[F]) (model.Record[F], error)
	Delete(ctx context.Context, rec model.Record[F]) (model.DeleteSummary, error)
	DeleteByID(ctx context.Context, id string) (model.DeleteSummary, error)
}
