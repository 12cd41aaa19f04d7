package inspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleConfig struct{ Addr string }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(Capability{Name: "mysql", Module: "github.com/go-sql-driver/mysql"})
	r.Register(Capability{Name: "pgx", Module: "github.com/jackc/pgx/v5"})
	r.RegisterType("sample.Config", reflect.TypeOf(sampleConfig{}))
	r.RegisterConstant("sample.Answer", 42)

	c, ok := r.Capability("mysql")
	assert.True(t, ok)
	assert.Equal(t, "github.com/go-sql-driver/mysql", c.Module)

	_, ok = r.Capability("sqlite")
	assert.False(t, ok)

	assert.Equal(t, []string{"mysql", "pgx"}, r.Capabilities())

	typ, ok := r.Type("sample.Config")
	assert.True(t, ok)
	assert.Equal(t, "sampleConfig", typ.Name())

	v, ok := r.Constant("sample.Answer")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestRegistryPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Capability{Name: "mysql"})
	r.RegisterType("t", reflect.TypeOf(0))
	r.RegisterConstant("c", 1)

	assert.Panics(t, func() { r.Register(Capability{}) })
	assert.Panics(t, func() { r.Register(Capability{Name: "mysql"}) })
	assert.Panics(t, func() { r.RegisterType("t", reflect.TypeOf(0)) })
	assert.Panics(t, func() { r.RegisterType("nil", nil) })
	assert.Panics(t, func() { r.RegisterConstant("c", 2) })
}
