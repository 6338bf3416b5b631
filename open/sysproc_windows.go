//go:build windows

package open

import (
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
