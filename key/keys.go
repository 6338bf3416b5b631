// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Resolution Preferences - these keys select the quality tier and container format requested by default.
const (
	ResolveQuality    = "resolve.quality"
	ResolveFormat     = "resolve.format"
	ResolveGateway    = "resolve.gateway"
	ResolveCopy       = "resolve.copy"
	ResolveMasterKeys = "resolve.master_keys"
)

// Platform API - these keys tune how the live platform endpoints are contacted.
const (
	APITimeout     = "api.timeout"
	APIFingerprint = "api.fingerprint"
	APIUseCookie   = "api.use_cookie"
)

// Room History - these keys configure the recent rooms registry used for completion.
const (
	RoomsRemember = "rooms.remember"
	RoomsLimit    = "rooms.limit"
)

// Media Playback - these keys select the external player launched with --play.
const (
	Player     = "player.default"
	PlayerArgs = "player.args"
)

// HTTP Service - these keys configure the optional resolution service started by "serve".
const (
	ServeAddr      = "serve.addr"
	ServeRateLimit = "serve.rate_limit"
	ServeBurst     = "serve.burst"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
