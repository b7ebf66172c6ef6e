//	 ,+---+
//	+---+´|    FILE-LOCKER SOURCE
//	| # | |    Copyright 2026
//	+---+´

package filelock

import (
	"errors"
	"fmt"
	"syscall"
)

// Portable classifications for lock failures, matched with errors.Is.
var (
	// ErrInvalidDescriptor is a negative or otherwise unusable file
	// descriptor, rejected before any lock state could change.
	ErrInvalidDescriptor = errors.New("invalid file descriptor")

	// ErrWouldBlock is a contended non-blocking acquisition. It is an
	// expected, retriable outcome, not a fault.
	ErrWouldBlock = errors.New("lock held by another process")

	// ErrInterrupted is a blocking acquisition cut short by a signal.
	ErrInterrupted = errors.New("lock wait interrupted by signal")
)

// Error is a failed lock or unlock syscall. It classifies the OS error
// against the package sentinels while keeping the original errno reachable
// through Unwrap for diagnostics. Open failures are not wrapped; they pass
// through from os.OpenFile as-is.
type Error struct {
	Errno syscall.Errno
	kind  error
}

func classify(errno syscall.Errno) *Error {
	e := &Error{Errno: errno}
	switch errno {
	case syscall.EBADF:
		e.kind = ErrInvalidDescriptor
	case syscall.EAGAIN, syscall.EACCES:
		// POSIX allows either code for a contended F_SETLK.
		e.kind = ErrWouldBlock
	case syscall.EINTR:
		e.kind = ErrInterrupted
	}
	return e
}

// asLockError maps a syscall failure to an *Error, leaving anything that
// does not carry an errno untouched.
func asLockError(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classify(errno)
	}
	return err
}

func (e *Error) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("filelock: %v (%v)", e.kind, e.Errno)
	}
	return fmt.Sprintf("filelock: %v", e.Errno)
}

func (e *Error) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

func (e *Error) Unwrap() error {
	return e.Errno
}
