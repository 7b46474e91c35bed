package hardware

import (
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/internal"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

const (
	RADIO_HWID    = cpu.HWID(0x0005)
	RADIO_ADDRESS = uint16(5)

	RADIO_LISTEN   = 1
	RADIO_TRANSMIT = 2
)

var _radio_defines = map[string]int{
	"HWID_RADIO":     int(RADIO_HWID),
	"RADIO":          int(RADIO_ADDRESS),
	"RADIO_LISTEN":   RADIO_LISTEN,
	"RADIO_TRANSMIT": RADIO_TRANSMIT,
}

// Tower is a world object that relays radio messages.
type Tower interface {
	world.Object
	SendMessage(msg []uint16) bool
	Messages() [][]uint16
}

// Radio talks to the radio towers near its host.
//
// Register A selects the operation:
//
//	1 LISTEN    copy every message of the towers in range to address X,
//	            one slot of the message length each; B = message count
//	2 TRANSMIT  send one message from address X to the nearest tower in
//	            range; B = 1 if delivered, else 0
type Radio struct {
	host          Host
	rangeLimit    int
	messageLength int
}

var _ Device = (*Radio)(nil)

// NewRadio creates a Radio that reaches towers within rangeLimit tiles
// and exchanges messages of messageLength words.
func NewRadio(host Host, rangeLimit int, messageLength int) *Radio {
	return &Radio{
		host:          host,
		rangeLimit:    rangeLimit,
		messageLength: messageLength,
	}
}

func (radio *Radio) ID() cpu.HWID {
	return RADIO_HWID
}

func (radio *Radio) Address() uint16 {
	return RADIO_ADDRESS
}

func (radio *Radio) Defines() iter.Seq2[string, string] {
	return internal.Defines(_radio_defines)
}

func distance(ax, ay, bx, by int) int {
	dx, dy := ax-bx, ay-by
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Towers returns the towers in range, in world order.
func (radio *Radio) Towers() iter.Seq[Tower] {
	return func(yield func(Tower) bool) {
		for obj := range radio.host.World().Objects() {
			tower, ok := obj.(Tower)
			if !ok {
				continue
			}
			if distance(tower.X(), tower.Y(), radio.host.X(), radio.host.Y()) > radio.rangeLimit {
				continue
			}
			if !yield(tower) {
				return
			}
		}
	}
}

// nearest returns the closest tower in range. Ties go to the earliest
// tower in world order.
func (radio *Radio) nearest() (found Tower, ok bool) {
	best := 0
	for tower := range radio.Towers() {
		d := distance(tower.X(), tower.Y(), radio.host.X(), radio.host.Y())
		if !ok || d < best {
			found, best, ok = tower, d, true
		}
	}
	return
}

func (radio *Radio) HandleInterrupt(cp *cpu.Cpu, status cpu.Status) {
	regs := cp.Registers

	switch regs.Get("A") {
	case RADIO_LISTEN:
		addr := int(regs.Get("X"))
		count := 0
		for tower := range radio.Towers() {
			for _, msg := range tower.Messages() {
				slot := make([]uint16, radio.messageLength)
				copy(slot, msg)
				setWords(cp.Memory, addr, slot...)
				addr += radio.messageLength
				count++
			}
		}
		regs.SetInt("B", count)
	case RADIO_TRANSMIT:
		regs.SetInt("B", 0)
		tower, ok := radio.nearest()
		if !ok {
			return
		}
		msg, err := cp.Memory.Words(int(regs.Get("X")), radio.messageLength)
		if err != nil {
			logrus.WithField("cubot", radio.host.ObjectID()).Debugf("radio: %v", err)
			return
		}
		if tower.SendMessage(msg) {
			regs.SetInt("B", 1)
		}
	}
}

func (radio *Radio) Marshal() persist.Record {
	return marshalDevice(RADIO_HWID, radio.host)
}

func decodeRadio(rec persist.Record, host Host, cfg *config.Config) (Device, error) {
	return NewRadio(host, cfg.RadioRange, cfg.RadioMessageLength), nil
}
