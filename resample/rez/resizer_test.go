package rez_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/resample/rez"
	"github.com/srlehn/rescale/scale"
)

func TestNewRezFamilies(t *testing.T) {
	for _, f := range []scale.Family{scale.Bilinear, scale.Bicubic, scale.Lanczos} {
		_, err := rez.New(f)
		assert.NoError(t, err, `family %s`, f)
	}
	_, err := rez.New(scale.Box)
	assert.ErrorIs(t, err, consts.ErrConfiguration)
}

func TestRezRejectsMismatchedTypes(t *testing.T) {
	r, err := rez.New(scale.Bilinear)
	require.NoError(t, err)
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	src := image.NewGray(image.Rect(0, 0, 20, 20))
	err = r.Scale(dst, src, nil)
	assert.ErrorIs(t, err, consts.ErrUnsupportedType)
}

func TestRezResizesDirectFormats(t *testing.T) {
	r, err := rez.New(scale.Bicubic)
	require.NoError(t, err)
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 0xC0
	}
	dst := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	require.NoError(t, r.Scale(dst, src, nil))
	assert.InDelta(t, 0xC0, dst.NRGBAAt(16, 16).R, 1)
}
