package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func ids(rooms []model.Room) []uint64 {
	out := make([]uint64, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}

func TestRankRooms(t *testing.T) {
	plain := model.Room{ID: 1}
	ff := model.Room{ID: 2, Features: []model.AccessibilityFeature{firstFloor}}
	both := model.Room{ID: 3, Features: []model.AccessibilityFeature{firstFloor, nonSmoking}}
	ns := model.Room{ID: 4, Features: []model.AccessibilityFeature{nonSmoking}}

	tests := []struct {
		name     string
		rooms    []model.Room
		required []model.AccessibilityFeature
		want     []uint64
	}{
		{"matching room beats plain room", []model.Room{plain, ff}, []model.AccessibilityFeature{firstFloor}, []uint64{2, 1}},
		{"plain room first without preferences", []model.Room{ff, plain}, nil, []uint64{1, 2}},
		{"higher score first", []model.Room{ff, ns, both}, []model.AccessibilityFeature{firstFloor, nonSmoking}, []uint64{3, 2, 4}},
		{"ties keep input order", []model.Room{ns, plain, ff}, []model.AccessibilityFeature{firstFloor}, []uint64{2, 4, 1}},
		{"no preferences keeps order among featured rooms", []model.Room{both, ns, plain, ff}, []model.AccessibilityFeature{}, []uint64{1, 3, 4, 2}},
		{"empty input", []model.Room{}, nil, []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(RankRooms(tt.rooms, tt.required)))
		})
	}
}

func TestRankRoomsDoesNotMutateInput(t *testing.T) {
	rooms := []model.Room{{ID: 1, Features: []model.AccessibilityFeature{firstFloor}}, {ID: 2}}

	_ = RankRooms(rooms, nil)

	assert.Equal(t, []uint64{1, 2}, ids(rooms))
}
