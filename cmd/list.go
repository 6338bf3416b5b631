package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/inline"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/livelink-cli/livelink/style"
	"github.com/livelink-cli/livelink/util"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	listCmd.Flags().StringP("format", "f", "", "Only show candidates of this container format (ts, fmp4, flv)")
	listCmd.SetOut(os.Stdout)
}

// listCmd shows every stream candidate a room offers.
var listCmd = &cobra.Command{
	Use:               "list <room>",
	Short:             "Show the quality tiers and stream candidates of a live room",
	Aliases:           []string{"ls"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionRooms,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = context.Background()
			client = newClient()
			room   = lookupRoom(ctx, client, args[0])
			engine = newEngine(client)
		)

		format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			_, err := inline.List(ctx, &inline.Options{
				Out:      cmd.OutOrStdout(),
				Resolver: engine,
				Request:  resolver.Request{Room: room},
			})
			handleErr(err)
			return
		}

		listing, err := engine.List(ctx, room)
		handleErr(err)

		if f, ok := format.Get(); ok {
			listing.Candidates = stream.Filter(listing.Candidates, f)
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 120
		}

		renderListing(cmd.OutOrStdout(), room, listing, width)
	},
}

// renderListing writes the tiers and a candidate table no wider than width.
func renderListing(w io.Writer, room resolver.Room, listing *resolver.Listing, width int) {
	header := style.New().Bold(true).Foreground(color.HiBlue).Render
	labels := lo.SliceToMap(listing.Tiers, func(t resolver.TierInfo) (stream.Tier, string) {
		return t.Tier, t.Label
	})
	label := func(t stream.Tier) string {
		if l, ok := labels[t]; ok {
			return l
		}
		return stream.Label(t)
	}

	fmt.Fprintf(w, "%s %s\n",
		header(fmt.Sprintf("Room %d", room.ID)),
		style.Faint(util.Quantify(len(listing.Candidates), "candidate", "candidates")),
	)

	tiers := lo.Map(listing.Tiers, func(t resolver.TierInfo, _ int) string {
		s := fmt.Sprintf("%s (%d)", t.Label, t.Tier)
		if current, ok := listing.Current.Get(); ok && current == t.Tier {
			return style.Fg(color.Green)(s)
		}
		return s
	})
	fmt.Fprintf(w, "%s %s\n\n", style.Faint("Tiers:"), strings.Join(tiers, ", "))

	if len(listing.Candidates) == 0 {
		fmt.Fprintln(w, style.Faint("no candidates"))
		return
	}

	columns := []uint{2, 10, 6, 16, 6}
	cell := func(s string, n uint) string {
		return padding.String(truncate.StringWithTail(s, n, "…"), n+1)
	}

	fixed := int(lo.Sum(columns)) + len(columns)
	urlWidth := uint(util.Max(width-fixed, 20))

	fmt.Fprintln(w, header(
		cell("", columns[0])+
			cell("Tier", columns[1])+
			cell("Format", columns[2])+
			cell("Protocol", columns[3])+
			cell("Codec", columns[4])+
			"URL",
	))

	def, hasDefault := listing.Default.Get()
	for _, c := range listing.Candidates {
		marker := ""
		if hasDefault && c == def {
			marker = "*"
		}

		fmt.Fprintln(w,
			cell(marker, columns[0])+
				cell(label(c.Tier), columns[1])+
				cell(c.Format.String(), columns[2])+
				cell(c.Protocol, columns[3])+
				cell(c.Codec, columns[4])+
				style.Faint(truncate.StringWithTail(c.URL, urlWidth, "…")),
		)
	}
}
