// Package inline implements the non-interactive mode: resolve a room and
// print the URL, or a JSON document for scripts.
package inline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/resolver"
)

// Run resolves the requested room and writes the result to options.Out.
func Run(ctx context.Context, options *Options) (*resolver.Result, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	result, err := options.Resolver.Resolve(ctx, options.Request)
	if err != nil {
		return nil, err
	}

	if result.Fallback {
		log.Infof("gateway gave nothing for room %d, used %s", options.Request.Room.ID, result.Strategy)
	}

	if options.Json {
		return result, write(options.Out, NewOutput(options.Request.Room.ID, result, options.Candidates))
	}

	_, err = fmt.Fprintln(options.Out, result.URL)
	return result, err
}

// List writes the ranked candidates of the room as JSON.
func List(ctx context.Context, options *Options) (*resolver.Listing, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	listing, err := options.Resolver.List(ctx, options.Request.Room)
	if err != nil {
		return nil, err
	}

	return listing, write(options.Out, NewListing(options.Request.Room.ID, listing))
}

func write(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
