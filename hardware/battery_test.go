package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/world"
)

func TestBattery(t *testing.T) {
	assert := assert.New(t)

	w := world.NewWorld(4, 0, 0)
	host := newTestHost(w, 0, 0, 1200)
	bat := NewBattery(host)
	cp := cpu.NewCpu(64)

	interrupt(cp, bat, map[string]int{"A": BATTERY_POLL})
	assert.Equal(uint16(1200), cp.Registers.Get("B"))

	interrupt(cp, bat, map[string]int{"A": BATTERY_GET_MAX})
	assert.Equal(uint16(4000), cp.Registers.Get("B"))

	host.SpendEnergy(200)
	interrupt(cp, bat, map[string]int{"A": BATTERY_POLL})
	assert.Equal(uint16(1000), cp.Registers.Get("B"))

	interrupt(cp, bat, map[string]int{"A": 0, "B": 7})
	assert.Equal(uint16(7), cp.Registers.Get("B"))
}
