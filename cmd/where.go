package cmd

import (
	"os"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/style"
	"github.com/livelink-cli/livelink/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a path "where" can print on its own with a flag.
type location struct {
	name   string
	flag   string
	short  string
	path   func() string
	listed bool
}

var locations = []location{
	{"Config", "config", "c", where.Config, true},
	{"Logs", "logs", "l", where.Logs, true},
	{"Rooms", "rooms", "r", where.Rooms, true},
	{"Cache", "cache", "", where.Cache, false},
	{"Temp", "temp", "", where.Temp, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
		if !l.listed {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where livelink keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(locations, func(l location, _ int) bool { return l.listed })

		for i, l := range listed {
			cmd.Printf("%s %s\n%s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag), l.path())
			if i < len(listed)-1 {
				cmd.Println()
			}
		}
	},
}
