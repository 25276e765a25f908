package domain

import "errors"

// ErrStore matches every *StoreError via errors.Is.
var ErrStore = errors.New("store operation failed")

// StoreError is the single failure kind of the inventory store client. Network,
// permission and quota failures all surface as one.
type StoreError struct {
	Op   string
	Name string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Name != "" {
		return e.Op + " " + e.Name + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
