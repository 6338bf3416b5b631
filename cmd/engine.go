package cmd

import (
	"context"
	"time"

	"github.com/livelink-cli/livelink/auth"
	"github.com/livelink-cli/livelink/bilibili"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/network"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/rooms"
	"github.com/livelink-cli/livelink/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newClient builds a platform client from the api.* settings.
func newClient() *bilibili.Client {
	httpClient := network.New(network.Options{
		Timeout:     time.Duration(viper.GetInt(key.APITimeout)) * time.Second,
		Fingerprint: viper.GetBool(key.APIFingerprint),
	})

	var options []bilibili.Option
	if viper.GetBool(key.APIUseCookie) {
		if cookie, ok := auth.Cookie(); ok {
			log.Debugf("sending stored session cookie")
			options = append(options, bilibili.WithCookie(cookie))
		}
	}

	return bilibili.New(httpClient, options...)
}

// newEngine builds a resolution engine over client from the resolve.* settings.
func newEngine(client *bilibili.Client) *resolver.Engine {
	return resolver.New(client, resolver.WithMasterKeys(viper.GetStringSlice(key.ResolveMasterKeys)...))
}

// lookupRoom resolves a room reference while showing progress on stderr.
func lookupRoom(ctx context.Context, client *bilibili.Client, reference string) resolver.Room {
	erase := util.PrintErasable(icon.Get(icon.Room) + " Looking up room...")
	room, err := client.Room(ctx, reference)
	erase()
	handleErr(err)

	if err := rooms.Remember(room.ID, reference); err != nil {
		log.Warnf("remember room %d: %s", room.ID, err)
	}

	return room
}

func completionRooms(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return lo.Map(rooms.SuggestMany(toComplete), func(r *rooms.Record, _ int) string {
		return r.Reference
	}), cobra.ShellCompDirectiveNoFileComp
}
