package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/style"
)

// CheckDependencies exits with an install hint when player is not in PATH.
func CheckDependencies(player string) {
	if _, err := exec.LookPath(player); err != nil {
		printMissingDependencyError(player)
		os.Exit(1)
	}
}

// installHint suggests a package manager command for well known players.
func installHint(player string) string {
	switch player {
	case "mpv", "vlc", "iina":
	default:
		return ""
	}

	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + player
	case constant.Linux:
		return "sudo apt install " + player
	case constant.Windows:
		return "scoop install " + player
	}
	return ""
}

func printMissingDependencyError(player string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Player", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.", player))

	suggestion := fmt.Sprintf("\n\nChange it with:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(
		fmt.Sprintf("%s config set %s <player>", constant.Livelink, key.Player),
	))
	if hint := installHint(player); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint)) + suggestion
	}

	fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
