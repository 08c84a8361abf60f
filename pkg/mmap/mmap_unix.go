//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func allocate(size int) (b []byte, err error) {
	b, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		err = os.NewSyscallError("mmap", err)
	}
	return
}

func free(b []byte) (err error) {
	if err = unix.Munmap(b); err != nil {
		err = os.NewSyscallError("munmap", err)
	}
	return
}
