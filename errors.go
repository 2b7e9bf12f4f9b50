package ucf

import "errors"

var (
	// ErrFormat reports a violation of the UCF packaging rules: an illegal
	// character in a member name, a name ending in a period, two names that
	// collide after Unicode normalization, a non-ASCII mimetype, or a
	// malformed container.xml. Errors are wrapped with context; test with
	// errors.Is.
	ErrFormat = errors.New("ucf: bad file format")

	// ErrLimitExceeded reports that reading an archive would exceed the
	// configured Limits.
	ErrLimitExceeded = errors.New("ucf: limit exceeded")

	// ErrNoDestination is returned by Save when the package was not opened
	// from a file path and no destination was given.
	ErrNoDestination = errors.New("ucf: no destination for save")
)
