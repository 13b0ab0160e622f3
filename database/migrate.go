package database

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Migrate applies every pending migration found at sourceURL (e.g.
// "file://migrations") to the database at databaseURL. It opens and closes its
// own connection.
func Migrate(sourceURL, databaseURL string) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return errors.Wrapf(err, "fail to init migrations from %v", sourceURL)
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrapf(err, "fail to run migrations")
	}
	return nil
}
