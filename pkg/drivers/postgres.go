//go:build postgres

package drivers

import (
	"reflect"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func init() {
	inspect.Register(inspect.Capability{Name: "postgres", Module: "github.com/lib/pq"})
	inspect.Register(inspect.Capability{Name: "pgx", Module: "github.com/jackc/pgx/v5"})
	inspect.RegisterType("pq.Driver", reflect.TypeOf(pq.Driver{}))
	inspect.RegisterType("stdlib.Driver", reflect.TypeOf((*stdlib.Driver)(nil)).Elem())
	inspect.RegisterConstant("pq.ErrSSLNotSupported", pq.ErrSSLNotSupported)
}
