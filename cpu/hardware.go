package cpu

// HWID identifies a hardware device type.
type HWID uint16

// Hardware is a device on the CPU bus.
//
// HandleInterrupt runs synchronously when the CPU raises an interrupt on
// the bus address the device is attached at. Register A selects the
// operation; unknown selectors are ignored. The handler may read and write
// registers and memory, and must return without blocking.
type Hardware interface {
	ID() HWID
	HandleInterrupt(cpu *Cpu, status Status)
}
