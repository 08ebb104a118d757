package surface

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
)

// Convert copies src into dst pixel for pixel, converting pixel format and
// premultiplication state through the color models. Spans must match; this
// is a converter, not a resizer.
//
// The copy geometry is 1:1, so destination row bands map to source row
// bands exactly and the work fans out over the pool without overlap.
func Convert(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if err := CheckSpans(dst, src); err != nil {
		return err
	}
	dw, dh := Spans(dst)
	sw, sh := Spans(src)
	if dw != sw || dh != sh {
		return errors.Errorf(`%w: %dx%d vs %dx%d`, consts.ErrSpanMismatch, sw, sh, dw, dh)
	}
	db, sb := dst.Bounds(), src.Bounds()
	bands := parallel.Bands(dh, p.Workers())
	tasks := make([]func(), 0, len(bands))
	for _, band := range bands {
		lo, hi := band[0], band[1]
		tasks = append(tasks, func() {
			r := image.Rect(db.Min.X, db.Min.Y+lo, db.Min.X+dw, db.Min.Y+hi)
			draw.Draw(dst, r, src, image.Pt(sb.Min.X, sb.Min.Y+lo), draw.Src)
		})
	}
	p.Run(tasks)
	return nil
}
