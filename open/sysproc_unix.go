//go:build !windows

package open

import (
	"syscall"
)

// sysProcAttr detaches the player from the terminal's process group so it
// outlives livelink.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
