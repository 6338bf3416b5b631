// Package cmd implements the command-line interface for livelink.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/style"
	"github.com/livelink-cli/livelink/util"
	"github.com/livelink-cli/livelink/version"
	"github.com/livelink-cli/livelink/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Use a browser TLS fingerprint when talking to the platform API")
	lo.Must0(viper.BindPFlag(key.APIFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the livelink application.
var rootCmd = &cobra.Command{
	Use:   constant.Livelink,
	Short: "Resolve playable stream URLs of Bilibili live rooms",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve playable stream URLs of Bilibili live rooms"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRooms,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		resolveCmd.Run(resolveCmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
