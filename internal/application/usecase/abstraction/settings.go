package abstraction

import "context"

// Settings reads and replaces per-page singleton documents of stored strings.
type Settings interface {
	Get(ctx context.Context, page string) (map[string]any, error)
	Put(ctx context.Context, page string, values map[string]any) error
}
