package identity

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sicko7947/claimflow"
)

// CachedValidator remembers validation outcomes, both accepted and
// rejected, for a fixed TTL
type CachedValidator struct {
	next  claimflow.IdentityValidator
	cache *cache.Cache
}

var _ claimflow.IdentityValidator = (*CachedValidator)(nil)

type cachedResult struct {
	identity claimflow.Identity
	err      error
}

// NewCachedValidator wraps next. A ttl <= 0 returns next unwrapped.
func NewCachedValidator(next claimflow.IdentityValidator, ttl time.Duration) claimflow.IdentityValidator {
	if ttl <= 0 {
		return next
	}
	return &CachedValidator{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// ValidateIdentity implements claimflow.IdentityValidator
func (v *CachedValidator) ValidateIdentity(ref string) (claimflow.Identity, error) {
	if hit, ok := v.cache.Get(ref); ok {
		result := hit.(cachedResult)
		return result.identity, result.err
	}

	id, err := v.next.ValidateIdentity(ref)
	v.cache.SetDefault(ref, cachedResult{identity: id, err: err})
	return id, err
}

// Len returns the number of cached outcomes
func (v *CachedValidator) Len() int {
	return v.cache.ItemCount()
}
