package gate

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// OpenSQLiteDB opens a sqlite backed bun.DB. Meant for self-contained
// deployments and tests where the local identity provider owns its own
// users table; production points the repositories at whatever DB the
// host application hands us.
func OpenSQLiteDB(dsn string) (*bun.DB, error) {
	db, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return bun.NewDB(db, sqlitedialect.New()), nil
}
