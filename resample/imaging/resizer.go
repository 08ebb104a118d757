// Package imaging is a custom-brand resampler backed by
// "github.com/disintegration/imaging".
package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	filter imaging.ResampleFilter
}

var _ scale.Scaler = (*Resizer)(nil)

func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Box:
		return &Resizer{filter: imaging.Box}, nil
	case scale.Bilinear:
		return &Resizer{filter: imaging.Linear}, nil
	case scale.Mitchell:
		return &Resizer{filter: imaging.MitchellNetravali}, nil
	case scale.Bicubic:
		return &Resizer{filter: imaging.CatmullRom}, nil
	case scale.Lanczos:
		return &Resizer{filter: imaging.Lanczos}, nil
	}
	return nil, errors.Errorf(`%w: no imaging filter for family %s`, consts.ErrConfiguration, f)
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dw, dh := surface.Spans(dst)
	m := imaging.Resize(src, dw, dh, r.filter)
	return surface.Convert(dst, m, p)
}
