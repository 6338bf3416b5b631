// Package main is the entry point for the livelink application.
package main

import (
	"github.com/livelink-cli/livelink/cmd"
	"github.com/livelink-cli/livelink/config"
	"github.com/livelink-cli/livelink/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
