package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/style"
	"github.com/livelink-cli/livelink/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		rows := []lo.Tuple2[string, string]{
			lo.T2("Version", constant.Version),
			lo.T2("Git Commit", constant.Revision),
			lo.T2("Build Date", strings.TrimSpace(constant.BuiltAt)),
			lo.T2("Built By", constant.BuiltBy),
			lo.T2("Platform", runtime.GOOS+"/"+runtime.GOARCH),
		}

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Livelink))
		for _, row := range rows {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-15s", row.A)), style.Bold(row.B))
		}
	},
}
