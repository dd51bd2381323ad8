package service

import (
	"sort"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RankRooms orders rooms by descending preference for the required
// feature set.  A room scores one point per required feature it provides.
// When nothing is required, rooms without any feature come first.  Ties
// keep the input order, so with free rooms listed by id the lower id wins.
// The input slice is not modified.
func RankRooms(rooms []model.Room, required []model.AccessibilityFeature) []model.Room {
	ranked := make([]model.Room, len(rooms))
	copy(ranked, rooms)

	if len(required) == 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			return len(ranked[i].Features) == 0 && len(ranked[j].Features) > 0
		})
		return ranked
	}

	want := make(map[uint64]struct{}, len(required))
	for _, f := range required {
		want[f.ID] = struct{}{}
	}
	scores := make(map[uint64]int, len(ranked))
	for _, room := range ranked {
		scores[room.ID] = room.MatchScore(want)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}
