// Package bilibili talks to the Bilibili live API: it builds the play info,
// gateway and room init URLs, parses room references and fetches on behalf of
// the resolver.
package bilibili

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/util"
)

// DefaultBaseURL is the live API host.
const DefaultBaseURL = "https://api.live.bilibili.com"

// PlayInfoURL builds the play info URL of a room. Every protocol, format and
// codec is requested so the resolver can choose among them.
func PlayInfoURL(base string, room int64) string {
	return fmt.Sprintf(
		"%s/xlive/web-room/v2/index/getRoomPlayInfo?room_id=%d&protocol=0,1&format=0,1,2&codec=0,1&qn=10000&platform=web&dolby=5&panorama=1",
		strings.TrimRight(base, "/"), room,
	)
}

// GatewayURL builds the master playlist gateway URL.
func GatewayURL(base string, query resolver.GatewayQuery) string {
	return fmt.Sprintf(
		"%s/xlive/play-gateway/master/url?cid=%d&mid=%d&qn=%d&pt=web&p2p_type=-1&net=0&free_type=0&build=0&feature=2&drm_type=0&cam_id=0",
		strings.TrimRight(base, "/"), query.CID, query.Owner, query.Tier,
	)
}

// RoomInitURL builds the room init URL, which maps short ids to real ones
// and names the owner.
func RoomInitURL(base string, room int64) string {
	return fmt.Sprintf("%s/room/v1/Room/room_init?id=%d", strings.TrimRight(base, "/"), room)
}

var roomPattern = regexp.MustCompile(`live\.bilibili\.com/(?:blanc/)?(?P<room>\d+)`)

// ParseRoom extracts a room id from a live page URL or a plain number.
func ParseRoom(reference string) (int64, error) {
	reference = strings.TrimSpace(reference)

	if id, err := strconv.ParseInt(reference, 10, 64); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("invalid room id %d", id)
		}
		return id, nil
	}

	groups := util.ReGroups(roomPattern, reference)
	room, ok := groups["room"]
	if !ok {
		return 0, fmt.Errorf("not a live room reference: %q", reference)
	}

	return strconv.ParseInt(room, 10, 64)
}
