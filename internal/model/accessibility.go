package model

// AccessibilityFeature is a named attribute such as "first floor" or
// "non-smoking".  Guests carry features as preferences and rooms carry
// them as capabilities.  This struct corresponds to a row in the
// `accessibility_features` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique display name.
type AccessibilityFeature struct {
	ID   uint64 `db:"id" json:"id"`     // accessibility_features.id
	Name string `db:"name" json:"name"` // accessibility_features.name
}

// FeatureIDs returns the ids of the given features in order.
func FeatureIDs(features []AccessibilityFeature) []uint64 {
	ids := make([]uint64, 0, len(features))
	for _, f := range features {
		ids = append(ids, f.ID)
	}
	return ids
}

// MergeFeatures returns the union of a and b keyed by feature id.  The
// order of first appearance is kept.
func MergeFeatures(a, b []AccessibilityFeature) []AccessibilityFeature {
	seen := make(map[uint64]struct{}, len(a)+len(b))
	out := make([]AccessibilityFeature, 0, len(a)+len(b))
	for _, list := range [][]AccessibilityFeature{a, b} {
		for _, f := range list {
			if _, ok := seen[f.ID]; ok {
				continue
			}
			seen[f.ID] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
