// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Livelink is the canonical application identifier used for filesystem paths and CLI branding.
	Livelink = "livelink"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent string sent to the live platform API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Referer is sent with every platform request; the API rejects anonymous requests without it.
	Referer = "https://live.bilibili.com/"
)

// Build metadata, overwritten through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
