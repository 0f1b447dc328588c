package identity

import (
	"fmt"

	"github.com/sicko7947/claimflow"
)

// NewValidator builds the validator selected by cfg, wrapped in a
// CachedValidator when cfg.CacheTTL is positive
func NewValidator(cfg claimflow.IdentityConfig) (claimflow.IdentityValidator, error) {
	var v claimflow.IdentityValidator
	switch cfg.Format {
	case claimflow.IdentityFormatPlain, "":
		v = NewFormatValidator()
	case claimflow.IdentityFormatBase58:
		v = Base58Validator{Prefix: cfg.Prefix, PayloadSize: cfg.PayloadSize}
	default:
		return nil, fmt.Errorf("unknown identity format %q", cfg.Format)
	}
	return NewCachedValidator(v, cfg.CacheTTL), nil
}
