// Package rooms keeps the history of resolved rooms for shell completion.
package rooms

import (
	"strconv"
	"strings"
	"time"

	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is a remembered room.
type Record struct {
	ID int64 `json:"id"`
	// Reference is what the user typed, a URL or the id itself.
	Reference string    `json:"reference"`
	Rank      int       `json:"rank"`
	LastSeen  time.Time `json:"last_seen"`
}

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.Rooms(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records a resolved room or bumps its rank. It does nothing when
// room history is turned off.
func Remember(id int64, reference string) error {
	if !viper.GetBool(key.RoomsRemember) {
		return nil
	}

	records := load()
	k := strconv.FormatInt(id, 10)

	if record, ok := records[k]; ok {
		record.Rank++
		record.LastSeen = time.Now()
		record.Reference = sanitize(reference)
	} else {
		records[k] = &Record{ID: id, Reference: sanitize(reference), Rank: 1, LastSeen: time.Now()}
	}

	return cacher.Set(trim(records, viper.GetInt(key.RoomsLimit)))
}

// All returns every remembered room, most used first.
func All() []*Record {
	return sorted(lo.Values(load()))
}

// Suggest returns the best remembered match for partial input.
func Suggest(partial string) mo.Option[*Record] {
	matches := SuggestMany(partial)
	if len(matches) == 0 {
		return mo.None[*Record]()
	}
	return mo.Some(matches[0])
}

// SuggestMany returns the remembered rooms whose id or reference fuzzily
// matches partial, most used first.
func SuggestMany(partial string) []*Record {
	partial = sanitize(partial)
	return lo.Filter(All(), func(r *Record, _ int) bool {
		return fuzzy.Match(partial, r.Reference) || fuzzy.Match(partial, strconv.FormatInt(r.ID, 10))
	})
}

// Forget removes every remembered room.
func Forget() error {
	return cacher.Set(make(map[string]*Record))
}

func load() map[string]*Record {
	records, expired, err := cacher.Get()
	if err != nil || expired || records == nil {
		return make(map[string]*Record)
	}
	return records
}

func sorted(records []*Record) []*Record {
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastSeen.Compare(a.LastSeen)
	})
	return records
}

// trim keeps the limit highest ranked rooms. A limit below one keeps everything.
func trim(records map[string]*Record, limit int) map[string]*Record {
	if limit < 1 || len(records) <= limit {
		return records
	}

	kept := sorted(lo.Values(records))[:limit]
	return lo.SliceToMap(kept, func(r *Record) (string, *Record) {
		return strconv.FormatInt(r.ID, 10), r
	})
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
