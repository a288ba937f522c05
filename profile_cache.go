package gate

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const profileCacheKey = "session:profile"

// CachedProfiles wraps a ProfileService with a short-lived cache so that
// several guards mounted on the same navigation share one profile fetch.
// The cache is an optimization only: Invalidate is called on login,
// logout, and unban, and entries expire on their own after the TTL.
type CachedProfiles struct {
	source ProfileService
	cache  *gocache.Cache
	logger Logger
}

var _ ProfileService = (*CachedProfiles)(nil)
var _ ProfileInvalidator = (*CachedProfiles)(nil)

// NewCachedProfiles wraps source with a cache holding entries for ttl.
func NewCachedProfiles(source ProfileService, ttl time.Duration) *CachedProfiles {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedProfiles{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
		logger: defLogger{},
	}
}

func (p *CachedProfiles) WithLogger(logger Logger) *CachedProfiles {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Profile returns the cached profile or fetches a fresh one. Fetch errors
// are never cached, the next caller retries.
func (p *CachedProfiles) Profile(ctx context.Context) (*User, error) {
	if cached, found := p.cache.Get(profileCacheKey); found {
		if user, ok := cached.(*User); ok {
			return user, nil
		}
	}

	user, err := p.source.Profile(ctx)
	if err != nil {
		return nil, err
	}

	p.cache.SetDefault(profileCacheKey, user)
	return user, nil
}

// Invalidate drops the cached profile. Call after login, logout, or any
// admin action that changes ban state.
func (p *CachedProfiles) Invalidate() {
	p.logger.Debug("profile cache invalidated")
	p.cache.Delete(profileCacheKey)
}
