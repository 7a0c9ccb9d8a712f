package history

import "errors"

var (
	// ErrUnsupportedPlatform indicates the current OS has no known
	// Chrome history location. This is a fatal configuration error.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")

	// ErrHistoryNotFound indicates no history database exists at the
	// resolved path.
	ErrHistoryNotFound = errors.New("chrome history not found")

	// ErrHistoryLocked indicates the history database could not be
	// snapshotted, usually because Chrome holds a lock or permissions
	// deny the read.
	ErrHistoryLocked = errors.New("unable to access chrome history")
)
