package compose

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// DefaultMaxStepRatio bounds the per-step downscale factor of Iterative.
const DefaultMaxStepRatio = 2.0

// Iterative downscales in bounded steps. Kernels built for modest ratios
// alias and shed detail when one step spans a very large ratio; capping
// each step trades intermediate allocations for quality.
type Iterative struct {
	step     scale.Scaler
	maxRatio float64
}

var _ scale.Scaler = (*Iterative)(nil)

// NewIterative wraps step, applying it repeatedly with no single step
// downscaling by more than maxRatio per axis. maxRatio must exceed 1.
func NewIterative(step scale.Scaler, maxRatio float64) (*Iterative, error) {
	if step == nil {
		return nil, errors.Errorf(`%w: nil step scaler`, consts.ErrConfiguration)
	}
	if !(maxRatio > 1) {
		return nil, errors.Errorf(`%w: max step ratio %v must exceed 1`, consts.ErrBadThreshold, maxRatio)
	}
	return &Iterative{step: step, maxRatio: maxRatio}, nil
}

// nextSpan clips one step of downscaling src towards dst. A span that
// would not shrink is forced down by one pixel so the loop always
// terminates.
func (it *Iterative) nextSpan(src, dst int) int {
	if src <= dst {
		return dst
	}
	next := int(math.Ceil(float64(src) / it.maxRatio))
	if next < dst {
		next = dst
	}
	if next >= src {
		next = src - 1
	}
	return next
}

func (it *Iterative) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if it == nil || it.step == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dw, dh := surface.Spans(dst)
	cur := src
	for {
		sw, sh := surface.Spans(cur)
		nw, nh := it.nextSpan(sw, dw), it.nextSpan(sh, dh)
		if nw <= dw && nh <= dh {
			break
		}
		tmp, err := surface.NewLike(cur, nw, nh)
		if err != nil {
			return err
		}
		// Scale joins all its tasks before returning, so tmp is
		// complete before the next step reads it.
		if err := it.step.Scale(tmp, cur, p); err != nil {
			return err
		}
		cur = tmp
	}
	return it.step.Scale(dst, cur, p)
}
