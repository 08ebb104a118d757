// Package compose provides the decomposition scalers: composites that
// split one resize into ordered sub-steps for quality (bounding per-step
// downscale ratios) or to avoid artifacts when the axes scale in opposite
// directions.
//
// Every composite wraps scalers satisfying the same capability contract it
// implements itself, so composites nest arbitrarily. Intermediate surfaces
// are owned by the composite that allocates them and never escape a call;
// each stage is fully joined before the next stage reads its output.
package compose

import (
	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/scale"
)

func checkOperands(s1, s2 scale.Scaler) error {
	if s1 == nil || s2 == nil {
		return errors.Errorf(`%w: nil scaler operand`, consts.ErrConfiguration)
	}
	if s1 == s2 {
		return errors.New(consts.ErrSameScaler)
	}
	return nil
}
