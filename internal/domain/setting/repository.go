package setting

import "context"

// Repository persists site settings. Settings are read on demand with no
// in-process cache, so admin changes take effect on the next request.
type Repository interface {
	// Upsert writes a single key independently of any other key.
	Upsert(ctx context.Context, s *SiteSetting) error
	// Get returns the setting for a key, or a not-found error.
	Get(ctx context.Context, key string) (*SiteSetting, error)
	GetAll(ctx context.Context) ([]*SiteSetting, error)
	// GetMany returns the settings that exist among the given keys. Missing
	// keys are simply absent from the result.
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
}
