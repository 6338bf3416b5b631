// Package icon renders the status symbols printed in front of messages, in the
// variant chosen by the icons.variant setting.
package icon

import (
	"github.com/livelink-cli/livelink/key"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	plain   = "plain"
	emoji   = "emoji"
	kaomoji = "kaomoji"
	squares = "squares"
	nerd    = "nerd"
)

var variants = []string{plain, emoji, kaomoji, squares, nerd}

// AvailableVariants lists the values icons.variant accepts.
func AvailableVariants() []string {
	return slices.Clone(variants)
}

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) in(variant string) string {
	switch variant {
	case plain:
		return d.plain
	case emoji:
		return d.emoji
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	case nerd:
		return d.nerd
	}
	return ""
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.in(viper.GetString(key.IconsVariant))
}
