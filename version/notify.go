// Package version checks for newer releases of livelink.
package version

import (
	"fmt"
	"os"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/style"
	"github.com/livelink-cli/livelink/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to stderr when a newer release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		log.Debugf("version check: %s", err)
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(os.Stderr, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+repository+"/releases/tag/v"+version),
	)
}
