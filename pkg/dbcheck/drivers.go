package dbcheck

import (
	"fmt"

	"github.com/vertti/dbpreflight/pkg/check"
	"github.com/vertti/dbpreflight/pkg/inspect"
)

// DriversCheck lists the drivers registered with an abstraction layer.
type DriversCheck struct {
	Layer     string            // defaults to inspect.Abstraction
	Inspector inspect.Inspector // injected for testing
}

// Run lists the registered drivers, failing when there are none.
func (c *DriversCheck) Run() (result check.Result) {
	layer := c.Layer
	if layer == "" {
		layer = inspect.Abstraction
	}
	result = check.Result{Name: fmt.Sprintf("drivers: %s", layer)}

	drivers, err := c.listDrivers(layer)
	if err != nil {
		return result.Fail(fmt.Sprintf("cannot list drivers: %v", err), err)
	}
	if len(drivers) == 0 {
		return result.Fail("no drivers registered", inspect.Missing("no %s drivers registered", layer))
	}

	for _, d := range drivers {
		result.Item(d)
	}
	result.Status = check.StatusOK
	return result
}

func (c *DriversCheck) listDrivers(layer string) (drivers []string, err error) {
	defer inspect.Recover(inspect.OpSubDrivers, layer, &err)
	return c.Inspector.SubDrivers(layer)
}
