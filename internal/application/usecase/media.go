package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"vitrine/internal/domain/model"
	"vitrine/internal/domain/repository/blob"
	"vitrine/pkg/pathcodec"
)

// ErrUnsupportedType reports a file rejected by the namespace allow-list
// before any transfer started.
var ErrUnsupportedType = errors.New("unsupported file type")

// TypePolicy is a per-namespace upload allow-list. A nil policy allows
// everything, which is what the image namespaces use.
type TypePolicy struct {
	// Extensions are the accepted file extensions, lower-case without dot.
	Extensions []string

	// MIMEPrefix, when set, additionally requires the declared content type to
	// start with it, e.g. "video/".
	MIMEPrefix string
}

// Allows checks fileName's extension and the declared content type.
func (p *TypePolicy) Allows(fileName, contentType string) bool {
	if p == nil {
		return true
	}

	if p.MIMEPrefix != "" && contentType != "" && !strings.HasPrefix(contentType, p.MIMEPrefix) {
		return false
	}

	if len(p.Extensions) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
		for _, allowed := range p.Extensions {
			if ext == allowed {
				return true
			}
		}

		return false
	}

	return true
}

// Media is the upload coordinator for one storage namespace, e.g.
// "videos/creatives". It owns the naming convention through the path codec
// and the namespace's type policy.
type Media struct {
	uploader  blob.Uploader
	lister    blob.Lister
	remover   blob.Remover
	namespace string
	policy    *TypePolicy
	now       func() time.Time
}

func NewMedia(uploader blob.Uploader, lister blob.Lister, remover blob.Remover,
	namespace string, policy *TypePolicy,
) *Media {
	return &Media{
		uploader:  uploader,
		lister:    lister,
		remover:   remover,
		namespace: namespace,
		policy:    policy,
		now:       time.Now,
	}
}

// Upload validates the file against the namespace policy, derives the storage
// path and transfers the blob. The policy check happens before any transfer;
// onProgress sees a non-decreasing percentage in [0,100]. There is no in-flight
// cancellation beyond ctx: an unwanted finished upload is deleted afterwards.
func (m *Media) Upload(ctx context.Context, folderKey, fileName, contentType string,
	size int64, body io.Reader, onProgress func(percent int),
) (model.Asset, error) {
	if !m.policy.Allows(fileName, contentType) {
		return model.Asset{}, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, fileName, contentType)
	}

	path, err := pathcodec.BuildUploadPath(m.namespace, folderKey, fileName, m.now())
	if err != nil {
		return model.Asset{}, err
	}

	asset, err := m.uploader.Upload(ctx, path, body, size, contentType, onProgress)
	if err != nil {
		return model.Asset{}, fmt.Errorf("upload %s: %w", path, err)
	}

	return asset, nil
}

// List enumerates the assets under the namespace's folder.
func (m *Media) List(ctx context.Context, folderKey string) ([]model.Asset, error) {
	assets, err := m.lister.List(ctx, m.namespace+"/"+folderKey)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s: %w", m.namespace, folderKey, err)
	}

	return assets, nil
}

// DeleteByURL recovers the storage path from a previously issued download URL
// and removes the blob. A URL the codec cannot invert is rejected without any
// deletion being attempted.
func (m *Media) DeleteByURL(ctx context.Context, rawURL string) error {
	path, err := pathcodec.ResolveStoragePathFromURL(rawURL)
	if err != nil {
		return err
	}

	if err := m.remover.Remove(ctx, path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	return nil
}
