//	 ,+---+
//	+---+´|    FILE-LOCKER SOURCE
//	| # | |    Copyright 2026
//	+---+´

//go:build unix

package filelock

import (
	"errors"
	"io"
	"syscall"

	"golang.org/x/sys/unix"
)

// wholeFile builds a record-lock descriptor spanning the entire file; Len 0
// means "to end of file", so the region grows with the file.
func wholeFile(lockType int16) unix.Flock_t {
	return unix.Flock_t{
		Type:   lockType,
		Whence: int16(io.SeekStart),
		Start:  0,
		Len:    0, // whole file
	}
}

// lockFile acquires a whole-file record lock on fd: F_WRLCK if writeable,
// F_RDLCK otherwise, waiting via F_SETLKW only when blocking.
func lockFile(fd uintptr, blocking, writeable bool) error {
	lockType := int16(unix.F_RDLCK)
	if writeable {
		lockType = int16(unix.F_WRLCK)
	}
	cmd := unix.F_SETLK
	if blocking {
		cmd = unix.F_SETLKW
	}
	flock := wholeFile(lockType)
	if err := unix.FcntlFlock(fd, cmd, &flock); err != nil {
		return asLockError(err)
	}
	return nil
}

// unlockFile removes any record lock held on fd. Always F_SETLK: removing
// a lock cannot contend, and removing a lock that is not held succeeds.
func unlockFile(fd uintptr) error {
	flock := wholeFile(int16(unix.F_UNLCK))
	if err := unix.FcntlFlock(fd, unix.F_SETLK, &flock); err != nil {
		return asLockError(err)
	}
	return nil
}

// RawLock acquires the same whole-file lock as Lock on an already-open
// descriptor, reporting the raw errno as an int with 0 on success. It is
// meant for callers on the far side of a foreign-function boundary, where
// structured errors cannot cross.
func RawLock(fd int, blocking, writeable bool) int {
	if fd < 0 {
		return int(unix.EBADF)
	}
	return rawErrno(lockFile(uintptr(fd), blocking, writeable))
}

// RawUnlock is the errno-int counterpart of Unlock.
func RawUnlock(fd int) int {
	if fd < 0 {
		return int(unix.EBADF)
	}
	return rawErrno(unlockFile(uintptr(fd)))
}

func rawErrno(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return int(unix.EINVAL)
}
