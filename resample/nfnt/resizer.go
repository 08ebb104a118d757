// Package nfnt is a custom-brand resampler backed by
// "github.com/nfnt/resize".
package nfnt

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	interp resize.InterpolationFunction
}

var _ scale.Scaler = (*Resizer)(nil)

func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Nearest:
		return &Resizer{interp: resize.NearestNeighbor}, nil
	case scale.Bilinear:
		return &Resizer{interp: resize.Bilinear}, nil
	case scale.Mitchell:
		return &Resizer{interp: resize.MitchellNetravali}, nil
	case scale.Bicubic:
		return &Resizer{interp: resize.Bicubic}, nil
	case scale.Lanczos:
		return &Resizer{interp: resize.Lanczos3}, nil
	}
	return nil, errors.Errorf(`%w: no nfnt interpolation for family %s`, consts.ErrConfiguration, f)
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dw, dh := surface.Spans(dst)
	m := resize.Resize(uint(dw), uint(dh), src, r.interp)
	return surface.Convert(dst, m, p)
}
