package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/livelink-cli/livelink/auth"
	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the platform session used for higher quality tiers.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the platform session stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authLoginCmd.Flags().StringP("sessdata", "s", "", "The SESSDATA cookie value (prompted for when omitted)")
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a SESSDATA cookie in the system keyring",
	Long: `Store the SESSDATA cookie of a logged in browser session in the system keyring.

Copy the value from your browser's cookies for bilibili.com. Logged in
sessions are offered higher quality tiers.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		value, _ := cmd.Flags().GetString("sessdata")

		if value == "" {
			prompt := &survey.Password{
				Message: "SESSDATA:",
				Help:    "Found under the cookies of bilibili.com in your browser's developer tools",
			}
			handleErr(survey.AskOne(prompt, &value, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetSession(strings.TrimSpace(value)))
		fmt.Printf("%s session stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))

		if !viper.GetBool(key.APIUseCookie) {
			fmt.Printf("%s %s is off, the session will not be sent\n",
				style.Fg(color.Yellow)(icon.Get(icon.Question)),
				style.Fg(color.Purple)(key.APIUseCookie),
			)
		}
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

var authLogoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Remove the stored session from the system keyring",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteSession()
		if errors.Is(err, auth.ErrNoSession) {
			fmt.Println(style.Faint("no session stored"))
			return
		}

		handleErr(err)
		fmt.Printf("%s session removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is stored",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		value, err := auth.GetSession()
		if errors.Is(err, auth.ErrNoSession) {
			fmt.Printf("%s not logged in\n", style.Fg(color.Red)(icon.Get(icon.Fail)))
			return
		}
		handleErr(err)

		masked := value
		if len(masked) > 6 {
			masked = masked[:6] + strings.Repeat("*", 6)
		}

		fmt.Printf("%s logged in %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Faint("("+masked+")"))
	},
}
