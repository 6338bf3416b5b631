package config

import (
	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/key"
)

// Default maps every known key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to LIVELINK_* environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("config: key registered twice: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	// resolve
	register(key.ResolveQuality, 0, "Quality tier (qn) requested by default.\n0 means no preference: the gateway uses the highest offered tier")
	register(key.ResolveFormat, "", "Container format requested by default.\nAvailable options are: ts, fmp4, flv (empty for no preference)")
	register(key.ResolveGateway, true, "Ask the play gateway for a master playlist before composing a URL from room info")
	register(key.ResolveCopy, false, "Copy the resolved URL to the clipboard")
	register(key.ResolveMasterKeys, []string{"master_url", "m3u8_master_url"}, "Keys holding a master playlist URL in gateway JSON answers")

	// api
	register(key.APITimeout, 15, "Timeout in seconds for a single platform API request")
	register(key.APIFingerprint, false, "Use a browser TLS fingerprint when talking to the platform API")
	register(key.APIUseCookie, true, "Send the session cookie stored by \"livelink auth login\".\nLogged in sessions are offered higher quality tiers")

	// rooms and playback
	register(key.RoomsRemember, true, "Remember resolved rooms for shell completion")
	register(key.RoomsLimit, 50, "Maximum number of remembered rooms")
	register(key.Player, "mpv", "Media player launched by --play")
	register(key.PlayerArgs, []string{"--http-header-fields=Referer: " + constant.Referer}, "Extra arguments passed to the player before the URL")

	// serve
	register(key.ServeAddr, "127.0.0.1:8899", "Listen address of \"livelink serve\"")
	register(key.ServeRateLimit, 5.0, "Requests per second accepted by \"livelink serve\"")
	register(key.ServeBurst, 10, "Burst size of the \"livelink serve\" rate limiter")

	// cli
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
