package services

import "errors"

var (
	// ErrValidation signals that user-supplied field values violated a
	// garment invariant (empty required field, negative quantity). Nothing
	// is persisted when it is returned.
	ErrValidation = errors.New("invalid garment input")
	// ErrImportSource signals that an import source could not be opened or
	// read at all. The import aborts with zero rows imported.
	ErrImportSource = errors.New("unreadable import source")
)
