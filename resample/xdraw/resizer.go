// Package xdraw is the native-brand resampler backed by
// golang.org/x/image/draw. It is the only leaf that subdivides the
// destination itself: the draw scalers clip the destination rectangle
// against the buffer bounds while keeping the full mapping geometry, so
// disjoint row bands fan out over the pool without changing the result.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "golang.org/x/image/draw"
type Resizer struct {
	scaler draw.Scaler
}

var _ scale.Scaler = (*Resizer)(nil)

// New returns the native resampler for the given family. The native
// engine has no box, Mitchell or Lanczos kernel.
func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Nearest:
		return &Resizer{scaler: draw.NearestNeighbor}, nil
	case scale.Bilinear:
		return &Resizer{scaler: draw.BiLinear}, nil
	case scale.Bicubic:
		return &Resizer{scaler: draw.CatmullRom}, nil
	}
	return nil, errors.Errorf(`%w: no native kernel for family %s`, consts.ErrConfiguration, f)
}

// Fast returns the ApproxBiLinear resampler, the cheap workhorse used for
// coarse pre-reduction steps.
func Fast() *Resizer {
	return &Resizer{scaler: draw.ApproxBiLinear}
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil || r.scaler == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	dr, sr := dst.Bounds(), src.Bounds()
	clipper, clippable := dst.(subImager)
	if p.Workers() <= 1 || !clippable {
		r.scaler.Scale(dst, dr, src, sr, draw.Src, nil)
		return nil
	}
	_, dh := surface.Spans(dst)
	bands := parallel.Bands(dh, p.Workers())
	tasks := make([]func(), 0, len(bands))
	for _, band := range bands {
		clip := image.Rect(dr.Min.X, dr.Min.Y+band[0], dr.Max.X, dr.Min.Y+band[1])
		banded, ok := clipper.SubImage(clip).(draw.Image)
		if !ok {
			r.scaler.Scale(dst, dr, src, sr, draw.Src, nil)
			return nil
		}
		tasks = append(tasks, func() {
			// full dr keeps the mapping geometry, the sub-image
			// bounds restrict the written rows
			r.scaler.Scale(banded, dr, src, sr, draw.Src, nil)
		})
	}
	p.Run(tasks)
	return nil
}
