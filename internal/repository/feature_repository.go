package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// FeatureRepo manages the accessibility feature catalog.
type FeatureRepo struct {
	db *sqlx.DB
}

// NewFeatureRepo returns a FeatureRepo bound to db.
func NewFeatureRepo(db *sqlx.DB) *FeatureRepo { return &FeatureRepo{db: db} }

// List returns all features ordered by id.
func (r *FeatureRepo) List(ctx context.Context) ([]model.AccessibilityFeature, error) {
	const q = `SELECT id, name FROM accessibility_features ORDER BY id`
	out := []model.AccessibilityFeature{}
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return out, nil
}

// GetByID returns the feature or apperrors NotFound.
func (r *FeatureRepo) GetByID(ctx context.Context, id uint64) (*model.AccessibilityFeature, error) {
	const q = `SELECT id, name FROM accessibility_features WHERE id = ?`
	var f model.AccessibilityFeature
	if err := r.db.GetContext(ctx, &f, q, id); err != nil {
		return nil, translate(err, "accessibility feature", id)
	}
	return &f, nil
}

// GetByIDs returns the features that exist among ids.  Missing ids are
// silently absent from the result; callers compare lengths.
func (r *FeatureRepo) GetByIDs(ctx context.Context, ids []uint64) ([]model.AccessibilityFeature, error) {
	out := []model.AccessibilityFeature{}
	if len(ids) == 0 {
		return out, nil
	}
	q, args, err := toSQL(dialect.From("accessibility_features").
		Select("id", "name").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.C("id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("get features: %w", err)
	}
	return out, nil
}

// Create inserts f and sets its generated id.
func (r *FeatureRepo) Create(ctx context.Context, f *model.AccessibilityFeature) error {
	const q = `INSERT INTO accessibility_features (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, f.Name)
	if err != nil {
		return translate(err, "accessibility feature", 0)
	}
	f.ID, err = lastInsertID(res)
	return err
}

// Update renames the feature.
func (r *FeatureRepo) Update(ctx context.Context, f *model.AccessibilityFeature) error {
	const q = `UPDATE accessibility_features SET name = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, f.Name, f.ID)
	if err != nil {
		return translate(err, "accessibility feature", f.ID)
	}
	return requireAffected(res, "accessibility feature", f.ID)
}

// Delete removes the feature.  A feature still assigned to a room or a
// guest cannot be deleted and yields Conflict.
func (r *FeatureRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM accessibility_features WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translate(err, "accessibility feature", id)
	}
	return requireAffected(res, "accessibility feature", id)
}

// featureLink is one row of a room or guest feature join.
type featureLink struct {
	OwnerID uint64 `db:"owner_id"`
	ID      uint64 `db:"id"`
	Name    string `db:"name"`
}

// featuresByOwner loads the features assigned through a join table such as
// room_accessibility_features, grouped by owner id.
func featuresByOwner(ctx context.Context, q sqlx.QueryerContext, table, ownerCol string, ownerIDs []uint64) (map[uint64][]model.AccessibilityFeature, error) {
	out := make(map[uint64][]model.AccessibilityFeature, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	query, args, err := toSQL(dialect.From(goqu.T(table).As("l")).
		Join(goqu.T("accessibility_features").As("f"), goqu.On(goqu.I("f.id").Eq(goqu.I("l.feature_id")))).
		Select(goqu.I("l."+ownerCol).As("owner_id"), goqu.I("f.id"), goqu.I("f.name")).
		Where(goqu.Ex{"l." + ownerCol: ownerIDs}).
		Order(goqu.I("l."+ownerCol).Asc(), goqu.I("f.id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	var rows []featureLink
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], model.AccessibilityFeature{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

// linkFeature assigns a feature to an owner; assigning twice is a no-op.
// A missing owner or feature surfaces as a foreign key violation.
func linkFeature(ctx context.Context, db *sqlx.DB, table, ownerCol, entity string, ownerID, featureID uint64) error {
	q := fmt.Sprintf(`INSERT INTO %s (%s, feature_id) VALUES (?, ?) ON DUPLICATE KEY UPDATE feature_id = feature_id`, table, ownerCol)
	if _, err := db.ExecContext(ctx, q, ownerID, featureID); err != nil {
		return translate(err, entity, ownerID)
	}
	return nil
}

// unlinkFeature removes a feature assignment; NotFound when none existed.
func unlinkFeature(ctx context.Context, db *sqlx.DB, table, ownerCol, entity string, ownerID, featureID uint64) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND feature_id = ?`, table, ownerCol)
	res, err := db.ExecContext(ctx, q, ownerID, featureID)
	if err != nil {
		return translate(err, entity, ownerID)
	}
	return requireAffected(res, "accessibility feature", featureID)
}
