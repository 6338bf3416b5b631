package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/livelink-cli/livelink/color"
	"github.com/livelink-cli/livelink/icon"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/metrics"
	"github.com/livelink-cli/livelink/server"
	"github.com/livelink-cli/livelink/style"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServeAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().Float64("rate-limit", 0, "Requests per second accepted, 0 disables limiting")
	lo.Must0(viper.BindPFlag(key.ServeRateLimit, serveCmd.Flags().Lookup("rate-limit")))

	serveCmd.Flags().Int("burst", 0, "Burst size of the rate limiter")
	lo.Must0(viper.BindPFlag(key.ServeBurst, serveCmd.Flags().Lookup("burst")))
}

// serveCmd runs the HTTP resolution service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stream URLs over HTTP",
	Long: `Run an HTTP service that resolves live rooms on request.

  GET /rooms/{room}             resolution result as JSON
  GET /rooms/{room}/candidates  ranked candidates and tiers as JSON
  GET /health                   liveness probe
  GET /metrics                  prometheus metrics

Resolve requests accept the qn, format and gateway query parameters.
With ?redirect the service answers 302 to the stream URL instead, and
?candidates adds every ranked candidate to the JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		metrics.Register(prometheus.DefaultRegisterer)

		client := newClient()
		handler := server.New(
			newEngine(client),
			client,
			server.WithGateway(viper.GetBool(key.ResolveGateway)),
			server.WithRateLimit(viper.GetFloat64(key.ServeRateLimit), viper.GetInt(key.ServeBurst)),
		).Handler()

		addr := viper.GetString(key.ServeAddr)
		fmt.Fprintf(os.Stderr, "%s listening on %s\n", style.Fg(color.Green)(icon.Get(icon.Link)), style.Bold("http://"+addr))

		handleErr(server.Serve(ctx, addr, handler))
	},
}
