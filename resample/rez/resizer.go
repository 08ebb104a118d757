// Package rez is a custom-brand resampler backed by
// "github.com/bamiaux/rez" (SIMD assembly on amd64). rez resizes a fixed
// set of 8-bit formats in place; the dispatch layer converts both sides to
// a supported type before this adapter runs.
package rez

import (
	"image"

	"github.com/bamiaux/rez"
	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct {
	filter rez.Filter
}

var _ scale.Scaler = (*Resizer)(nil)

func New(f scale.Family) (*Resizer, error) {
	switch f {
	case scale.Bilinear:
		return &Resizer{filter: rez.NewBilinearFilter()}, nil
	case scale.Bicubic:
		return &Resizer{filter: rez.NewBicubicFilter()}, nil
	case scale.Lanczos:
		return &Resizer{filter: rez.NewLanczosFilter(3)}, nil
	}
	return nil, errors.Errorf(`%w: no rez filter for family %s`, consts.ErrConfiguration, f)
}

// Supported reports the extended types rez reads and writes directly.
func Supported(t surface.Type) bool {
	switch t {
	case surface.NRGBA, surface.RGBA, surface.Gray:
		return true
	}
	return false
}

func (r *Resizer) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if r == nil || r.filter == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	st, dt := surface.TypeOf(src), surface.TypeOf(dst)
	if st != dt || !Supported(st) {
		return errors.Errorf(`%w: rez cannot resize %s into %s`, consts.ErrUnsupportedType, st, dt)
	}
	if err := rez.Convert(dst, src, r.filter); err != nil {
		return errors.New(err)
	}
	return nil
}
