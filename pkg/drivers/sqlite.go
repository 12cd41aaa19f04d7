//go:build sqlite

package drivers

import (
	"reflect"

	"modernc.org/sqlite"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func init() {
	inspect.Register(inspect.Capability{Name: "sqlite", Module: "modernc.org/sqlite"})
	inspect.RegisterType("sqlite.Driver", reflect.TypeOf((*sqlite.Driver)(nil)).Elem())
}
