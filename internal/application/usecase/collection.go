package usecase

import (
	"context"
	"errors"
	"fmt"

	"vitrine/internal/domain/model"
	"vitrine/internal/domain/repository/blob"
	"vitrine/internal/domain/repository/database"
	"vitrine/pkg/logger"
)

var (
	// ErrValidation reports a missing required form field. User-correctable;
	// nothing reaches the store when it fires.
	ErrValidation = errors.New("validation failed")

	// ErrFolderKeyTaken reports an asset folder key already owned by another
	// live record of the same collection.
	ErrFolderKeyTaken = errors.New("asset folder key already in use")

	// ErrNotFound reports a record id with no live record behind it.
	ErrNotFound = errors.New("record not found")
)

// CollectionConfig binds one Collection to its document-store collection and,
// for blob-owning features, to the folder convention of its assets.
type CollectionConfig struct {
	// Collection is the document-store collection name.
	Collection string

	// ScopeField is the record field partitioning the collection into
	// independent ordered lists, e.g. "sectionId". Empty for top-level
	// collections.
	ScopeField string

	// FolderKeyField is the record field holding the asset folder key, e.g.
	// "galleryKey". Empty when records of this feature own no blobs.
	FolderKeyField string

	// AssetNamespace prefixes the folder key in blob storage paths, e.g.
	// "images/design". Required when FolderKeyField is set.
	AssetNamespace string
}

const orderField = "order"

// Collection coordinates load, create-or-update and cascade delete of the
// records of one feature. It is stateless between calls: no lock is held and
// single-flight discipline is the caller's job.
type Collection[F model.Fields] struct {
	store   database.Store
	lister  blob.Lister
	remover blob.Remover
	cfg     CollectionConfig
}

// NewCollection creates a Collection. lister and remover may be nil when the
// feature owns no blobs.
func NewCollection[F model.Fields](store database.Store, lister blob.Lister,
	remover blob.Remover, cfg CollectionConfig,
) *Collection[F] {
	return &Collection[F]{
		store:   store,
		lister:  lister,
		remover: remover,
		cfg:     cfg,
	}
}

// Load returns all records of the scope ordered ascending by display order.
// An empty scope yields an empty slice, never an error; a failing fetch is
// returned as-is so the caller keeps its previously loaded state.
func (c *Collection[F]) Load(ctx context.Context, scope string) ([]model.Record[F], error) {
	recs := make([]model.Record[F], 0)
	if err := c.store.Query(ctx, c.cfg.Collection, c.scope(scope), orderField, &recs); err != nil {
		return nil, fmt.Errorf("load %s: %w", c.cfg.Collection, err)
	}

	return recs, nil
}

// CreateDraft returns an unsaved record with defaults merged in and the order
// defaulted to count(existing)+1. Not visible to Load until saved.
func (c *Collection[F]) CreateDraft(ctx context.Context, scope string, defaults F) (model.Record[F], error) {
	count, err := c.store.Count(ctx, c.cfg.Collection, c.scope(scope))
	if err != nil {
		return model.Record[F]{}, fmt.Errorf("count %s: %w", c.cfg.Collection, err)
	}

	return model.Record[F]{
		Order:  int(count) + 1,
		Fields: defaults,
	}, nil
}

// Save persists rec: a draft is created and gets its id from the store, an
// existing record has its mutable fields replaced in place. Validation and the
// folder-key uniqueness check run before anything is written.
func (c *Collection[F]) Save(ctx context.Context, rec model.Record[F]) (model.Record[F], error) {
	if err := rec.Fields.Validate(); err != nil {
		return rec, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if err := c.checkFolderKey(ctx, rec); err != nil {
		return rec, err
	}

	if rec.Draft() {
		id, err := c.store.Create(ctx, c.cfg.Collection, rec)
		if err != nil {
			return rec, fmt.Errorf("create in %s: %w", c.cfg.Collection, err)
		}
		rec.ID = id

		return rec, nil
	}

	if err := c.store.Update(ctx, c.cfg.Collection, rec.ID, rec); err != nil {
		return rec, fmt.Errorf("update %s/%s: %w", c.cfg.Collection, rec.ID, err)
	}

	return rec, nil
}

// checkFolderKey refuses to persist an asset folder key already owned by a
// different live record. The original data carried this only as a caller
// obligation; the store can check it cheaply, so it is enforced here.
func (c *Collection[F]) checkFolderKey(ctx context.Context, rec model.Record[F]) error {
	if c.cfg.FolderKeyField == "" {
		return nil
	}

	key := rec.Fields.AssetFolder()
	if key == "" {
		return nil
	}

	n, err := c.store.CountField(ctx, c.cfg.Collection, c.cfg.FolderKeyField, key, rec.ID)
	if err != nil {
		return fmt.Errorf("folder key check in %s: %w", c.cfg.Collection, err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %q", ErrFolderKeyTaken, key)
	}

	return nil
}

// Delete removes rec and every blob under its asset folder. Asset cleanup is
// best-effort: all asset deletes are issued before the record delete, an
// individual failure is counted and logged but never aborts the record
// deletion. The returned summary makes the non-atomicity explicit.
func (c *Collection[F]) Delete(ctx context.Context, rec model.Record[F]) (model.DeleteSummary, error) {
	var sum model.DeleteSummary

	if key := rec.Fields.AssetFolder(); key != "" && c.lister != nil {
		folder := c.cfg.AssetNamespace + "/" + key

		assets, err := c.lister.List(ctx, folder)
		if err != nil {
			logger.Warn("listing assets for cascade delete failed",
				"collection", c.cfg.Collection, "folder", folder, "err", err)
		}

		for _, asset := range assets {
			if err := c.remover.Remove(ctx, asset.StoragePath); err != nil {
				sum.AssetsFailed++
				logger.Error("asset delete failed",
					"collection", c.cfg.Collection, "path", asset.StoragePath, "err", err)

				continue
			}
			sum.AssetsDeleted++
		}
	}

	if err := c.store.Delete(ctx, c.cfg.Collection, rec.ID); err != nil {
		return sum, fmt.Errorf("delete %s/%s: %w", c.cfg.Collection, rec.ID, err)
	}
	sum.RecordDeleted = true

	return sum, nil
}

// DeleteByID fetches the record first so the cascade sees its asset folder.
func (c *Collection[F]) DeleteByID(ctx context.Context, id string) (model.DeleteSummary, error) {
	var rec model.Record[F]

	found, err := c.store.Get(ctx, c.cfg.Collection, id, &rec)
	if err != nil {
		return model.DeleteSummary{}, fmt.Errorf("get %s/%s: %w", c.cfg.Collection, id, err)
	}
	if !found {
		return model.DeleteSummary{}, fmt.Errorf("%w: %s/%s", ErrNotFound, c.cfg.Collection, id)
	}
	rec.ID = id

	return c.Delete(ctx, rec)
}

// Refresh loads the scope into view, dropping the response if a younger load
// finished first.
func (c *Collection[F]) Refresh(ctx context.Context, scope string, view *CollectionView[F]) error {
	seq := view.Begin()

	recs, err := c.Load(ctx, scope)
	if err != nil {
		return err
	}

	view.Apply(seq, recs)

	return nil
}

func (c *Collection[F]) scope(value string) database.Scope {
	if c.cfg.ScopeField == "" {
		return database.Scope{}
	}

	return database.Scope{Field: c.cfg.ScopeField, Value: value}
}
