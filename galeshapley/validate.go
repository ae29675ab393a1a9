package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// validateInstance rejects nil and malformed instances before the engine
// touches any index. Shape and permutation checks are delegated to the
// prefs package; its sentinels stay matchable through the wrap.
func validateInstance(in *prefs.Instance) error {
	// 1) Nil pointer first, so field access below is safe.
	if in == nil {
		return ErrNilInstance
	}

	// 2) Equal sides, square tables, every row a permutation of [0,n).
	if err := in.Validate(); err != nil {
		return fmt.Errorf("galeshapley: invalid instance: %w", err)
	}

	return nil
}
