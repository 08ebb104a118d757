package compose

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// SplitDownUp handles resizes whose axes scale in opposite directions by
// applying the downscaling axis first through down and the upscaling axis
// second through up, via an intermediate sized min(src, dst) per axis.
// When the axes agree the whole resize goes to a single operand directly.
type SplitDownUp struct {
	down scale.Scaler
	up   scale.Scaler
}

var _ scale.Scaler = (*SplitDownUp)(nil)

// NewSplitDownUp composes the downscaling and upscaling operands, which
// must be distinct instances.
func NewSplitDownUp(down, up scale.Scaler) (*SplitDownUp, error) {
	if err := checkOperands(down, up); err != nil {
		return nil, err
	}
	return &SplitDownUp{down: down, up: up}, nil
}

func (sd *SplitDownUp) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if sd == nil || sd.down == nil || sd.up == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	sw, sh := surface.Spans(src)
	dw, dh := surface.Spans(dst)
	wDown, hDown := dw < sw, dh < sh
	switch {
	case wDown && hDown:
		return sd.down.Scale(dst, src, p)
	case !wDown && !hDown:
		return sd.up.Scale(dst, src, p)
	}
	mw, mh := sw, sh
	if wDown {
		mw = dw
	}
	if hDown {
		mh = dh
	}
	tmp, err := surface.NewLike(src, mw, mh)
	if err != nil {
		return err
	}
	if err := sd.down.Scale(tmp, src, p); err != nil {
		return err
	}
	return sd.up.Scale(dst, tmp, p)
}
