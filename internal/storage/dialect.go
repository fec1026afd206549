package storage

import "fmt"

// dialect holds what differs between the supported database engines.
type dialect struct {
	schema string

	// returningID is set for engines without LastInsertId support.
	returningID bool
}

var dialects = map[string]dialect{
	"sqlite3": {
		schema: `
			CREATE TABLE IF NOT EXISTS notebooks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				full_name TEXT NOT NULL,
				company TEXT,
				phone TEXT NOT NULL,
				email TEXT NOT NULL,
				birth_date TEXT,
				photo TEXT
			)`,
	},
	"mysql": {
		schema: `
			CREATE TABLE IF NOT EXISTS notebooks (
				id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				full_name VARCHAR(255) NOT NULL,
				company VARCHAR(255),
				phone VARCHAR(64) NOT NULL,
				email VARCHAR(255) NOT NULL,
				birth_date VARCHAR(32),
				photo MEDIUMTEXT
			)`,
	},
	"postgres": {
		schema: `
			CREATE TABLE IF NOT EXISTS notebooks (
				id BIGSERIAL PRIMARY KEY,
				full_name TEXT NOT NULL,
				company TEXT,
				phone TEXT NOT NULL,
				email TEXT NOT NULL,
				birth_date TEXT,
				photo TEXT
			)`,
		returningID: true,
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	return d, nil
}
