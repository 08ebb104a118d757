// Package gift is a custom-brand resampler backed by
// "github.com/disintegration/gift", the only custom engine with built-in
// parallelization.
package gift

import (
	"image"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	resampling gift.Resampling
}

var _ scale.Scaler = (*Resizer)(nil)

func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Nearest:
		return &Resizer{resampling: gift.NearestNeighborResampling}, nil
	case scale.Box:
		return &Resizer{resampling: gift.BoxResampling}, nil
	case scale.Bilinear:
		return &Resizer{resampling: gift.LinearResampling}, nil
	case scale.Lanczos:
		return &Resizer{resampling: gift.LanczosResampling}, nil
	}
	return nil, errors.Errorf(`%w: no gift resampling for family %s`, consts.ErrConfiguration, f)
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil || r.resampling == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dw, dh := surface.Spans(dst)
	m := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	gift.Resize(dw, dh, r.resampling).Draw(m, src, &gift.Options{Parallelization: p.Workers() > 1})
	return surface.Convert(dst, m, p)
}
