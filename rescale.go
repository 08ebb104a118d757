// Package rescale picks, for an arbitrary combination of pixel formats,
// kernel family and scaling ratio, the fastest or most accurate execution
// path and runs it sequentially or across a caller-supplied worker pool.
package rescale

import (
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/smart"
	"github.com/srlehn/rescale/surface"
)

var (
	// chosen defaults, shared by the package-level convenience calls
	selOnce sync.Once
	sel     *scale.Selector
	selErr  error
)

func defaultSelector() (*scale.Selector, error) {
	selOnce.Do(func() {
		sel, selErr = scale.NewSelector()
	})
	return sel, selErr
}

// Scale resizes src into dst with the given kernel family. A nil pool
// runs strictly sequentially; the call returns after every destination
// pixel has been written either way.
func Scale(dst draw.Image, src image.Image, family scale.Family, p *parallel.Pool) error {
	s, err := defaultSelector()
	if err != nil {
		return err
	}
	sm, err := smart.New(family, smart.WithSelector(s))
	if err != nil {
		return err
	}
	return sm.Scale(dst, src, p)
}

// Resize allocates a w×h surface of the same extended type as src (or
// 32-bit premultiplied RGBA when that type cannot back a destination) and
// scales src into it.
func Resize(src image.Image, w, h int, family scale.Family, p *parallel.Pool) (image.Image, error) {
	if src == nil {
		return nil, scale.CheckPair(nil, nil)
	}
	dst, err := surface.NewLike(src, w, h)
	if err != nil {
		return nil, err
	}
	if err := Scale(dst, src, family, p); err != nil {
		return nil, err
	}
	return dst, nil
}
