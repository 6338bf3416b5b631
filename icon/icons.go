package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Question
	Link
	Gateway
	Play
	Clipboard
	Room
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "🟨",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "→",
		kaomoji: "(っ˘ω˘ς )",
		squares: "🟪",
	},
	Gateway: {
		emoji:   "🛰️",
		nerd:    "",
		plain:   "@",
		kaomoji: "( ͡° ͜ʖ ͡°)",
		squares: "🟫",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   "▶",
		kaomoji: "ヾ(＾∇＾)",
		squares: "🟧",
	},
	Clipboard: {
		emoji:   "📋",
		nerd:    "",
		plain:   "#",
		kaomoji: "φ(．．)",
		squares: "⬜",
	},
	Room: {
		emoji:   "📺",
		nerd:    "",
		plain:   "~",
		kaomoji: "(⌐■_■)",
		squares: "⬛",
	},
}
