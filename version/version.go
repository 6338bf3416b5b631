// Package version checks for newer releases of livelink.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/network"
	"github.com/livelink-cli/livelink/where"
	"github.com/metafates/gache"
)

const (
	repository  = "livelink-cli/livelink"
	releasesURL = "https://api.github.com/repos/" + repository + "/releases/latest"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent released version.
// The answer of the GitHub releases API is cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := network.Get(ctx, network.Client, releasesURL, nil)
	if err != nil {
		return
	}

	if !resp.OK() {
		err = fmt.Errorf("unexpected status %d", resp.Status)
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.Unmarshal(resp.Body, &release); err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
