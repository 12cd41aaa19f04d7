//go:build !nomysql

package drivers

import (
	"reflect"

	"github.com/go-sql-driver/mysql"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func init() {
	inspect.Register(inspect.Capability{Name: "mysql", Module: "github.com/go-sql-driver/mysql"})
	inspect.RegisterType("mysql.Config", reflect.TypeOf((*mysql.Config)(nil)).Elem())
	inspect.RegisterType("mysql.MySQLDriver", reflect.TypeOf(mysql.MySQLDriver{}))
	inspect.RegisterConstant("mysql.ErrInvalidConn", mysql.ErrInvalidConn)
}
