package model

// Room is a bookable hotel room.  The feature set is not a column of the
// `rooms` table; it is loaded from `room_accessibility_features`.
//
// Fields:
//  ID       – primary key identifier.
//  Alias    – unique human readable label (e.g. "101").
//  Features – accessibility features the room provides.
type Room struct {
	ID       uint64                 `db:"id" json:"id"`                    // rooms.id
	Alias    string                 `db:"alias" json:"alias"`              // rooms.alias
	Features []AccessibilityFeature `db:"-" json:"accessibility_features"` // via room_accessibility_features
}

// MatchScore counts how many of the room's features appear in required.
func (r Room) MatchScore(required map[uint64]struct{}) int {
	score := 0
	for _, f := range r.Features {
		if _, ok := required[f.ID]; ok {
			score++
		}
	}
	return score
}
