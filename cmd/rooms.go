package cmd

import (
	"os"
	"strconv"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/rooms"
	"github.com/livelink-cli/livelink/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(roomsCmd)
}

// roomsCmd provides a parent command for the remembered rooms.
var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Manage the remembered rooms used for completion",
}

func init() {
	roomsCmd.AddCommand(roomsListCmd)

	roomsListCmd.Flags().BoolP("raw", "r", false, "Print room ids only")
	roomsListCmd.SetOut(os.Stdout)
}

var roomsListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "Display the remembered rooms, most used first",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records := rooms.All()
		if len(args) == 1 {
			records = rooms.SuggestMany(args[0])
		}

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, r := range records {
				cmd.Println(r.ID)
			}
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("no rooms remembered"))
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s %s\n",
				style.Fg(color.Purple)(strconv.FormatInt(r.ID, 10)),
				r.Reference,
				style.Faint(r.LastSeen.Format("2006-01-02 15:04")),
			)
		}
	},
}
