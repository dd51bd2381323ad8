// Package repository holds the MySQL persistence accessors.  Fixed
// statements are written as SQL constants; statements whose shape depends
// on input (IN lists, bulk inserts, optional filters) are built with goqu.
// Driver errors are translated into apperrors values here so that the
// service and handler layers never inspect MySQL error numbers.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
)

// MySQL server error numbers the repositories react to.
const (
	errDupEntry         = 1062
	errRowIsReferenced  = 1451
	errRowIsReferenced2 = 1217
	errNoReferencedRow  = 1452
	errNoReferencedRow2 = 1216
	errCheckConstraint  = 3819
)

var dialect = goqu.Dialect("mysql")

// sqlBuilder is satisfied by every goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

func toSQL(b sqlBuilder) (string, []interface{}, error) {
	q, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build query: %w", err)
	}
	return q, args, nil
}

// translate maps err onto an application error for the given entity.
// Unknown errors are wrapped and returned as storage errors.
func translate(err error, entity string, id uint64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errRowIsReferenced, errRowIsReferenced2:
			return apperrors.Conflict(fmt.Sprintf("%s %d is still referenced", entity, id))
		case errDupEntry:
			return apperrors.Conflict(fmt.Sprintf("%s already exists", entity))
		case errNoReferencedRow, errNoReferencedRow2:
			return apperrors.Validation(fmt.Sprintf("%s references a missing record", entity), err)
		case errCheckConstraint:
			return apperrors.Validation(fmt.Sprintf("%s violates a constraint", entity), err)
		}
	}
	return fmt.Errorf("%s %d: %w", entity, id, err)
}

// requireAffected turns a zero-row update or delete into NotFound.
func requireAffected(res sql.Result, entity string, id uint64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return apperrors.NotFound(entity, id)
	}
	return nil
}

func lastInsertID(res sql.Result) (uint64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return uint64(id), nil
}
