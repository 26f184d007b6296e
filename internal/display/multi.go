package display

import (
	"errors"

	"PolyBoard/internal/state"
)

type multi []Backend

// Multi fans every call out to each backend. All backends are called even
// when one fails; the errors are joined.
func Multi(backends ...Backend) Backend {
	return multi(backends)
}

func (m multi) Render(f state.Frame) error {
	var errs []error
	for _, b := range m {
		errs = append(errs, b.Render(f))
	}
	return errors.Join(errs...)
}

func (m multi) Clear() error {
	var errs []error
	for _, b := range m {
		errs = append(errs, b.Clear())
	}
	return errors.Join(errs...)
}
