package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/inline"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/livelink-cli/livelink/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().BoolP("play", "p", false, "Open the picked URL in the configured player")
	pickCmd.Flags().BoolP("copy", "C", false, "Copy the picked URL to the clipboard")
	pickCmd.Flags().Bool("no-gateway", false, "Compose the URL from room info without asking the play gateway")
}

// pickCmd lets the user choose a tier and format before resolving.
var pickCmd = &cobra.Command{
	Use:               "pick <room>",
	Short:             "Choose a quality tier and format interactively, then resolve",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionRooms,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = context.Background()
			client = newClient()
			room   = lookupRoom(ctx, client, args[0])
			engine = newEngine(client)
		)

		listing, err := engine.List(ctx, room)
		handleErr(err)

		tier, err := pickTier(listing)
		handleErr(err)

		format, err := pickFormat(listing, tier)
		handleErr(err)

		result, err := inline.Run(ctx, &inline.Options{
			Out:      os.Stdout,
			Resolver: engine,
			Request: resolver.Request{
				Room:       room,
				Tier:       mo.Some(tier),
				Format:     format,
				UseGateway: viper.GetBool(key.ResolveGateway) && !lo.Must(cmd.Flags().GetBool("no-gateway")),
			},
		})
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("copy")) || viper.GetBool(key.ResolveCopy) {
			handleErr(clipboard.WriteAll(result.URL))
			fmt.Fprintf(os.Stderr, "%s copied to clipboard\n", style.Fg(color.Green)(icon.Get(icon.Clipboard)))
		}

		if lo.Must(cmd.Flags().GetBool("play")) {
			play(result.URL)
		}
	},
}

func pickTier(listing *resolver.Listing) (stream.Tier, error) {
	options := lo.Map(listing.Tiers, func(t resolver.TierInfo, _ int) string {
		return fmt.Sprintf("%s (%d)", t.Label, t.Tier)
	})

	prompt := &survey.Select{
		Message: "Quality tier",
		Options: options,
	}

	if current, ok := listing.Current.Get(); ok {
		if _, index, found := lo.FindIndexOf(listing.Tiers, func(t resolver.TierInfo) bool {
			return t.Tier == current
		}); found {
			prompt.Default = options[index]
		}
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, err
	}

	return listing.Tiers[index].Tier, nil
}

// pickFormat asks for a format only when the tier is offered in more than one.
func pickFormat(listing *resolver.Listing, tier stream.Tier) (mo.Option[stream.Format], error) {
	formats := lo.Uniq(lo.FilterMap(listing.Candidates, func(c stream.Candidate, _ int) (stream.Format, bool) {
		return c.Format, c.Tier == tier
	}))

	if len(formats) < 2 {
		return mo.None[stream.Format](), nil
	}

	var name string
	prompt := &survey.Select{
		Message: "Container format",
		Options: lo.Map(formats, func(f stream.Format, _ int) string { return f.String() }),
	}

	if err := survey.AskOne(prompt, &name); err != nil {
		return mo.None[stream.Format](), err
	}

	return inline.ParseFormat(name)
}
