//	 ,+---+
//	+---+´|    FILE-LOCKER SOURCE
//	| # | |    Copyright 2026
//	+---+´

// Package filelock provides cross-process mutual exclusion on a named file
// using the operating system's advisory record-locking facility (fcntl
// record locks on Unix, LockFileEx on Windows). The lock always covers the
// whole file.
//
// Advisory means cooperating: the kernel arbitrates between processes that
// ask for the lock, but does nothing to stop a process that simply reads or
// writes the file without asking.
//
//	lock, err := filelock.New("state.db").Writeable(true).Blocking(true).Lock()
//	if err != nil {
//		return err
//	}
//	defer lock.Close()
//	_, err = lock.Write(data)
//
// Record locks are associated with the process, not with the open file
// handle: closing any descriptor a process holds to the same file can drop
// that process's lock entirely. Contention is therefore only observable
// between processes, never between two handles in the same process.
package filelock

import (
	"os"
)

// Builder accumulates a lock request. It performs no I/O until Lock is
// called; both flags default to false.
type Builder struct {
	path      string
	blocking  bool
	writeable bool
}

// New returns a Builder for path with blocking and writeable unset.
func New(path string) *Builder {
	return &Builder{path: path}
}

// Blocking selects whether Lock waits for a contended lock or fails
// immediately with ErrWouldBlock.
func (b *Builder) Blocking(v bool) *Builder {
	b.blocking = v
	return b
}

// Writeable selects an exclusive write lock instead of a shared read lock,
// and opens the file writeable, creating it if missing.
func (b *Builder) Writeable(v bool) *Builder {
	b.writeable = v
	return b
}

// Lock opens the file and acquires the lock with the accumulated settings.
func (b *Builder) Lock() (*FileLock, error) {
	return Lock(b.path, b.blocking, b.writeable)
}

// FileLock owns an open file together with the advisory lock held on it.
// A FileLock that has not been unlocked represents a currently-held lock on
// the entire file. It is a single mutable resource handle, not safe for
// concurrent use from multiple goroutines without external synchronization.
type FileLock struct {
	file      *os.File
	writeable bool
}

// Lock opens path and acquires a whole-file advisory lock on it: exclusive
// if writeable, shared otherwise. The file is opened read-only unless
// writeable, in which case it is opened read-write and created if missing;
// a read-only request on a missing file fails with the open error and no
// lock is attempted.
//
// In blocking mode the call suspends until the kernel grants the lock or a
// signal interrupts the wait, which surfaces as ErrInterrupted; the wait is
// never retried internally. In non-blocking mode a contended lock fails
// immediately with ErrWouldBlock.
//
// Either a handle holding the lock is returned, or nothing is retained: an
// open failure attempts no lock, and a lock failure closes the file before
// returning.
func Lock(path string, blocking, writeable bool) (*FileLock, error) {
	flag := os.O_RDONLY
	if writeable {
		flag = os.O_RDWR | os.O_CREATE
	}
	f, err := os.OpenFile(path, flag, 0666)
	if err != nil {
		return nil, err
	}
	if err := lockFile(f.Fd(), blocking, writeable); err != nil {
		f.Close()
		return nil, err
	}
	return &FileLock{file: f, writeable: writeable}, nil
}

// Unlock releases the lock without closing the file, so the caller can keep
// using it for unlocked I/O. Removing a lock cannot contend with other
// holders, so this never blocks regardless of how the lock was acquired.
// Unlock is idempotent: releasing an already-released lock succeeds.
func (l *FileLock) Unlock() error {
	if l == nil || l.file == nil {
		return nil
	}
	return unlockFile(l.file.Fd())
}

// Close releases the lock and closes the file. The unlock is best effort
// and its error discarded; there is nothing a deferred caller could do with
// it, and the lock is gone once the descriptor closes in any case. Close on
// a nil or already-closed handle returns nil.
func (l *FileLock) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = unlockFile(l.file.Fd())
	err := l.file.Close()
	l.file = nil
	return err
}

// File returns the underlying open file.
func (l *FileLock) File() *os.File {
	return l.file
}

// Fd returns the underlying file descriptor.
func (l *FileLock) Fd() uintptr {
	return l.file.Fd()
}

// Writeable reports whether the lock was acquired exclusive.
func (l *FileLock) Writeable() bool {
	return l.writeable
}

// The I/O surface delegates straight to the file. These calls carry no
// lock-state side effects and succeed or fail exactly as the file would.

func (l *FileLock) Read(p []byte) (int, error) {
	return l.file.Read(p)
}

func (l *FileLock) Write(p []byte) (int, error) {
	return l.file.Write(p)
}

func (l *FileLock) Seek(offset int64, whence int) (int64, error) {
	return l.file.Seek(offset, whence)
}

func (l *FileLock) ReadAt(p []byte, off int64) (int, error) {
	return l.file.ReadAt(p, off)
}

func (l *FileLock) WriteAt(p []byte, off int64) (int, error) {
	return l.file.WriteAt(p, off)
}
