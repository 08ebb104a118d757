package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/rescale/internal/consts"
)

type Error = errorsGo.Error

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip)
}

// NilReceiver returns an error naming the calling function. Called with
// arguments it errors only when at least one of them is nil; called
// without arguments the error is unconditional, for callers that tested
// the receiver themselves.
func NilReceiver(args ...any) error {
	return errMsgNilTester(consts.ErrNilReceiver, 3, args...)
}

// NilParam is NilReceiver for function parameters.
func NilParam(args ...any) error {
	return errMsgNilTester(consts.ErrNilParam, 3, args...)
}

func errMsgNilTester(base error, skip int, args ...any) error {
	if len(args) > 0 {
		anyNil := false
		for i := range args {
			if args[i] == nil {
				anyNil = true
				break
			}
		}
		if !anyNil {
			return nil
		}
	}
	return errMsg(base, skip)
}

func errMsg(base error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return New(base)
	}
	return Errorf(`%w: %s()`, base, runtime.FuncForPC(pc).Name())
}
