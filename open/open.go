// Package open launches stream URLs in a media player or the system's default handler.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/log"
)

// Start opens input with the system's default handler without waiting.
func Start(input string) error {
	target, err := sanitize(input)
	if err != nil {
		return err
	}

	cmd, ok := command(target)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// Play starts player with args followed by the stream URL and returns once
// the player process is running. An empty player falls back to Start.
func Play(streamURL, player string, args []string) error {
	target, err := sanitize(streamURL)
	if err != nil {
		return err
	}

	if player == "" {
		return Start(target)
	}

	path, err := exec.LookPath(player)
	if err != nil {
		return fmt.Errorf("player %q not found: %w", player, err)
	}

	cmd := exec.Command(path, append(args, target)...)
	cmd.SysProcAttr = sysProcAttr()
	log.Infof("starting %s for %s", player, target)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", player, err)
	}

	return cmd.Process.Release()
}

// sanitize rejects anything but http(s) URLs, so a URL can never be taken for a flag.
func sanitize(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
