package sqlconfig

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup by primary key matches no row.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
