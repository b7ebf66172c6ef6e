//	 ,+---+
//	+---+´|    FILE-LOCKER SOURCE
//	| # | |    Copyright 2026
//	+---+´

//go:build windows

package filelock

import (
	"golang.org/x/sys/windows"
)

// lockFile locks a one-byte region at offset zero via LockFileEx. Windows
// lock ranges are independent of file size, so one byte is enough for
// mutual exclusion between cooperating handles.
func lockFile(fd uintptr, blocking, writeable bool) error {
	var flags uint32
	if writeable {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	if !blocking {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	var ol windows.Overlapped
	err := windows.LockFileEx(windows.Handle(fd), flags, 0, 1, 0, &ol)
	if err == windows.ERROR_LOCK_VIOLATION {
		return &Error{Errno: windows.ERROR_LOCK_VIOLATION, kind: ErrWouldBlock}
	}
	if err != nil {
		return asLockError(err)
	}
	return nil
}

// unlockFile releases the region via UnlockFileEx. Releasing a region that
// is not locked reports ERROR_NOT_LOCKED, which is folded into success to
// keep Unlock idempotent like the Unix path.
func unlockFile(fd uintptr) error {
	var ol windows.Overlapped
	err := windows.UnlockFileEx(windows.Handle(fd), 0, 1, 0, &ol)
	if err == windows.ERROR_NOT_LOCKED {
		return nil
	}
	if err != nil {
		return asLockError(err)
	}
	return nil
}
