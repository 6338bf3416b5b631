package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/inline"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/open"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/livelink-cli/livelink/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addPreferenceFlags registers the tier and format preference flags shared by
// resolve, list and pick.
func addPreferenceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("qn", "q", "", "Quality tier to request, as a code (400) or a label (blu-ray, 4k)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("qn", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"30000", "20000", "10000", "400", "250", "150", "80"}, cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().StringP("format", "f", "", "Preferred container format (ts, fmp4, flv)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(stream.Formats(), func(f stream.Format, _ int) string { return f.String() }), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().Bool("no-gateway", false, "Compose the URL from room info without asking the play gateway")
}

// requestFromFlags merges the preference flags with the configured defaults.
func requestFromFlags(cmd *cobra.Command, room resolver.Room) resolver.Request {
	qn := lo.Must(cmd.Flags().GetString("qn"))
	if !cmd.Flags().Changed("qn") {
		qn = strconv.Itoa(viper.GetInt(key.ResolveQuality))
	}

	tier, err := inline.ParseTier(qn)
	handleErr(err)

	formatName := lo.Must(cmd.Flags().GetString("format"))
	if !cmd.Flags().Changed("format") {
		formatName = viper.GetString(key.ResolveFormat)
	}

	format, err := inline.ParseFormat(formatName)
	handleErr(err)

	return resolver.Request{
		Room:       room,
		Tier:       tier,
		Format:     format,
		UseGateway: viper.GetBool(key.ResolveGateway) && !lo.Must(cmd.Flags().GetBool("no-gateway")),
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	addPreferenceFlags(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	resolveCmd.Flags().BoolP("candidates", "c", false, "Include every ranked candidate in the JSON output")
	resolveCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	resolveCmd.Flags().BoolP("play", "p", false, "Open the resolved URL in the configured player")

	resolveCmd.Flags().BoolP("copy", "C", false, "Copy the resolved URL to the clipboard")
	lo.Must0(viper.BindPFlag(key.ResolveCopy, resolveCmd.Flags().Lookup("copy")))

	// the root command forwards to resolve, so it shares its flags
	rootCmd.Flags().AddFlagSet(resolveCmd.Flags())
}

// resolveCmd prints a playable stream URL of a live room.
var resolveCmd = &cobra.Command{
	Use:   "resolve <room>",
	Short: "Print a playable stream URL of a live room",
	Long: `Resolve a playable stream URL of a live room.

The room is a number or a live page URL such as https://live.bilibili.com/6.
Unless --no-gateway is given the play gateway is asked for a master playlist
first. Otherwise, or when it offers nothing, the URL is composed from the
room's play info.`,
	Example:           "  livelink resolve 6 --qn blu-ray --format ts",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionRooms,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = context.Background()
			client = newClient()
			room   = lookupRoom(ctx, client, args[0])
			output = lo.Must(cmd.Flags().GetString("output"))
		)

		var buf bytes.Buffer
		var out io.Writer = os.Stdout
		if output != "" {
			out = &buf
		}

		result, err := inline.Run(ctx, &inline.Options{
			Out:        out,
			Resolver:   newEngine(client),
			Request:    requestFromFlags(cmd, room),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Candidates: lo.Must(cmd.Flags().GetBool("candidates")),
		})
		handleErr(err)

		if output != "" {
			handleErr(filesystem.WriteAtomic(output, buf.Bytes(), 0o644))
		}

		if result.Fallback {
			fmt.Fprintf(os.Stderr, "%s %s\n",
				style.Fg(color.Yellow)(icon.Get(icon.Gateway)),
				style.Faint("gateway offered nothing, composed from room info via "+result.Strategy),
			)
		}

		if viper.GetBool(key.ResolveCopy) {
			handleErr(clipboard.WriteAll(result.URL))
			fmt.Fprintf(os.Stderr, "%s copied to clipboard\n", style.Fg(color.Green)(icon.Get(icon.Clipboard)))
		}

		if lo.Must(cmd.Flags().GetBool("play")) {
			play(result.URL)
		}
	},
}

// play starts the configured player on url.
func play(url string) {
	player := viper.GetString(key.Player)
	if player != "" {
		CheckDependencies(player)
	}

	handleErr(open.Play(url, player, viper.GetStringSlice(key.PlayerArgs)))
	fmt.Fprintf(os.Stderr, "%s playing in %s\n", style.Fg(color.Green)(icon.Get(icon.Play)), lo.Ternary(player == "", "default handler", player))
}

func init() {
	resolveCmd.AddCommand(resolveSchemaCmd)

	resolveSchemaCmd.Flags().BoolP("list", "l", false, "Generate the JSON Schema of the list output instead")
}

// resolveSchemaCmd generates JSON schemas for structured outputs.
var resolveSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured resolve output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema := inline.Schema(lo.Must(cmd.Flags().GetBool("list")))

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
