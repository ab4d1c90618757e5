package classifier

import "errors"

var (
	// ErrMalformedDataset reports a structural problem in the dataset source:
	// missing header or required column, ragged rows, empty or duplicated patterns.
	ErrMalformedDataset = errors.New("malformed dataset")
	// ErrInvalidPattern reports a pattern that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMissingDefaultPattern reports a dataset without the universal "*" entry.
	ErrMissingDefaultPattern = errors.New("missing default pattern")
	// ErrBrokenInheritance reports a dangling or cyclic parent reference.
	ErrBrokenInheritance = errors.New("broken inheritance")
	// ErrInvalidInput reports an empty or blank user agent.
	ErrInvalidInput = errors.New("invalid input")
)
