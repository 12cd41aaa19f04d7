// Package drivers links database/sql drivers into the binary and registers
// their capabilities and symbols with the inspect registry.
//
// Build tags select the drivers:
//
//	nomysql   drop github.com/go-sql-driver/mysql
//	postgres  add github.com/lib/pq and github.com/jackc/pgx/v5/stdlib
//	sqlite    add modernc.org/sqlite
package drivers

import (
	"database/sql"
	"reflect"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func init() {
	inspect.RegisterType("sql.DB", reflect.TypeOf((*sql.DB)(nil)).Elem())
	inspect.RegisterConstant("sql.LevelSerializable", sql.LevelSerializable)
}

// Ready is a no-op that main packages call to make the import explicit.
func Ready() {}
