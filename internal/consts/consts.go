package consts

import (
	"errors"
	"fmt"
)

var (
	ErrNilReceiver = errors.New(`nil receiver`)
	ErrNilParam    = errors.New(`nil parameter`)
	ErrNilImage    = errors.New(`nil image`)

	// ErrConfiguration covers caller misuse detected at construction or
	// entry. Never retried.
	ErrConfiguration = errors.New(`invalid scaler configuration`)

	ErrSameScaler   = fmt.Errorf(`%w: composed scalers must be distinct instances`, ErrConfiguration)
	ErrBadThreshold = fmt.Errorf(`%w: decomposition threshold out of range`, ErrConfiguration)
	ErrUnknownBrand = fmt.Errorf(`%w: unknown implementation brand`, ErrConfiguration)

	// ErrUnmappedUseCase means the brand table is incomplete relative to
	// the extended-type catalog. Fatal, never silently defaulted.
	ErrUnmappedUseCase = errors.New(`use case missing from brand table`)

	ErrBadSpan         = errors.New(`non-positive span`)
	ErrSpanMismatch    = errors.New(`source and destination spans differ`)
	ErrUnsupportedType = errors.New(`extended type not constructible`)
)

const (
	LibraryName = `rescale`
)
