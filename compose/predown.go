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

// DefaultMaxFinishRatio is the largest downscale factor PreDownscale
// leaves for its finishing scaler.
const DefaultMaxFinishRatio = 2.0

// PreDownscale reduces coarsely with a fast scaler first, leaving the
// finishing scaler a downscale of at most maxFinishRatio per axis. Within
// the threshold the pre-step is skipped; when the pre-step already lands
// on the destination spans the finishing step is skipped instead of
// running an identity-like pass.
type PreDownscale struct {
	pre            scale.Scaler
	finish         scale.Scaler
	maxFinishRatio float64
}

var _ scale.Scaler = (*PreDownscale)(nil)

// NewPreDownscale composes pre and finish. maxFinishRatio must be at
// least 1; pre and finish must be distinct instances.
func NewPreDownscale(pre, finish scale.Scaler, maxFinishRatio float64) (*PreDownscale, error) {
	if err := checkOperands(pre, finish); err != nil {
		return nil, err
	}
	if !(maxFinishRatio >= 1) {
		return nil, errors.Errorf(`%w: max finish ratio %v must be at least 1`, consts.ErrBadThreshold, maxFinishRatio)
	}
	return &PreDownscale{pre: pre, finish: finish, maxFinishRatio: maxFinishRatio}, nil
}

// midSpan returns the span the pre-step reduces one axis to, such that
// the remainder for the finishing step sits exactly at the threshold.
// Axes already within the threshold, including upscaling ones, are left
// untouched.
func (pd *PreDownscale) midSpan(src, dst int) int {
	if src <= dst || float64(src)/float64(dst) <= pd.maxFinishRatio {
		return src
	}
	mid := int(math.Round(float64(dst) * pd.maxFinishRatio))
	if mid >= src {
		mid = src - 1
	}
	if mid < dst {
		mid = dst
	}
	return mid
}

func (pd *PreDownscale) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if pd == nil || pd.pre == nil || pd.finish == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	sw, sh := surface.Spans(src)
	dw, dh := surface.Spans(dst)
	mw, mh := pd.midSpan(sw, dw), pd.midSpan(sh, dh)
	if mw == sw && mh == sh {
		// already within threshold on both axes
		return pd.finish.Scale(dst, src, p)
	}
	if mw == dw && mh == dh {
		// pre-reduction lands exactly on the destination
		return pd.pre.Scale(dst, src, p)
	}
	tmp, err := surface.NewLike(src, mw, mh)
	if err != nil {
		return err
	}
	if err := pd.pre.Scale(tmp, src, p); err != nil {
		return err
	}
	return pd.finish.Scale(dst, tmp, p)
}
