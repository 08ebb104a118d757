package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
)

func TestNilReceiverWithoutArgsAlwaysErrors(t *testing.T) {
	assert.ErrorIs(t, errors.NilReceiver(), consts.ErrNilReceiver)
	assert.ErrorIs(t, errors.NilParam(), consts.ErrNilParam)
}

func TestNilTesterChecksArgs(t *testing.T) {
	assert.NoError(t, errors.NilReceiver(1, `x`))
	assert.ErrorIs(t, errors.NilReceiver(1, nil), consts.ErrNilReceiver)
	assert.NoError(t, errors.NilParam(struct{}{}))
	assert.ErrorIs(t, errors.NilParam(nil), consts.ErrNilParam)
}

func TestNewNilStaysNil(t *testing.T) {
	assert.Nil(t, errors.New(nil))
}
