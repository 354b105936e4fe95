//go:build linux

package proctitle

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// commLen is the kernel's TASK_COMM_LEN without the trailing NUL.
const commLen = 15

// Set names the process for ps and top. Linux keeps only the first 15
// bytes of the thread name, so the full title goes to os.Args[0] too.
func Set(command string) error {
	title, err := format(command)
	if err != nil {
		return err
	}
	if len(os.Args) > 0 {
		os.Args[0] = title
	}

	b := make([]byte, commLen+1)
	copy(b, title)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
}
