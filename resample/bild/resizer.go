// Package bild is a custom-brand resampler backed by
// "github.com/anthonynsimon/bild/transform".
package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct {
	filter transform.ResampleFilter
}

var _ scale.Scaler = (*Resizer)(nil)

func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Nearest:
		return &Resizer{filter: transform.NearestNeighbor}, nil
	case scale.Box:
		return &Resizer{filter: transform.Box}, nil
	case scale.Bilinear:
		return &Resizer{filter: transform.Linear}, nil
	case scale.Mitchell:
		return &Resizer{filter: transform.MitchellNetravali}, nil
	case scale.Bicubic:
		return &Resizer{filter: transform.CatmullRom}, nil
	case scale.Lanczos:
		return &Resizer{filter: transform.Lanczos}, nil
	}
	return nil, errors.Errorf(`%w: no bild filter for family %s`, consts.ErrConfiguration, f)
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dw, dh := surface.Spans(dst)
	m := transform.Resize(src, dw, dh, r.filter)
	return surface.Convert(dst, m, p)
}
