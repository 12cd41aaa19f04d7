package drivers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func TestAbstractionSymbolsRegistered(t *testing.T) {
	Ready()

	_, ok := inspect.Default().Type("sql.DB")
	assert.True(t, ok)

	_, ok = inspect.Default().Constant("sql.LevelSerializable")
	assert.True(t, ok)
}

func TestRegisteredCapabilitiesHaveSQLDrivers(t *testing.T) {
	registered := map[string]bool{}
	for _, d := range sql.Drivers() {
		registered[d] = true
	}

	for _, name := range inspect.Default().Capabilities() {
		assert.True(t, registered[name], "capability %q has no database/sql driver", name)
	}
}
