package testutil

import (
	"context"
	"errors"
)

// ErrBackendDown is the error every FailingBackend operation returns.
var ErrBackendDown = errors.New("backend unavailable")

// FailingBackend is a storage.Backend double whose operations always fail.
// It verifies that callers tolerate storage loss without surfacing errors.
type FailingBackend struct {
	SaveCalls int
}

func (f *FailingBackend) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrBackendDown
}

func (f *FailingBackend) Save(context.Context, string, []byte) error {
	f.SaveCalls++
	return ErrBackendDown
}

func (f *FailingBackend) Close() error { return nil }
