package npc

import (
	"slices"

	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

const (
	RADIO_TOWER_TYPE     = 4
	RADIO_TOWER_MAP_INFO = uint16(0x1000)
)

// RadioTower relays messages with a one tick delay: messages sent during
// a tick can be read from the next tick on.
type RadioTower struct {
	world.Base
	MaxMessages   int
	MessageLength int

	messages     [][]uint16 // Sent this tick.
	lastMessages [][]uint16 // Sent last tick.
}

var _ world.Updatable = (*RadioTower)(nil)

func NewRadioTower(id world.ObjectID, x, y int, maxMessages int, messageLength int) *RadioTower {
	return &RadioTower{
		Base:          world.NewBase(id, x, y),
		MaxMessages:   maxMessages,
		MessageLength: messageLength,
	}
}

func (tower *RadioTower) MapInfo() uint16 {
	return RADIO_TOWER_MAP_INFO
}

func (tower *RadioTower) Update(w *world.World) {
	tower.lastMessages = tower.messages
	tower.messages = nil
}

// SendMessage queues a message for the next tick. It returns false, and
// drops the message, if the tower is full or the message is too long.
func (tower *RadioTower) SendMessage(msg []uint16) bool {
	if len(tower.messages) >= tower.MaxMessages || len(msg) > tower.MessageLength {
		return false
	}

	tower.messages = append(tower.messages, slices.Clone(msg))
	return true
}

// Messages returns the messages sent during the last tick.
func (tower *RadioTower) Messages() [][]uint16 {
	return tower.lastMessages
}

func (tower *RadioTower) Marshal() persist.Record {
	return tower.MarshalBase(RADIO_TOWER_TYPE)
}

func decodeRadioTower(rec persist.Record, maxMessages int, messageLength int) (obj world.Object, err error) {
	base, err := world.UnmarshalBase(rec)
	if err != nil {
		return
	}

	obj = NewRadioTower(base.ObjectID(), base.X(), base.Y(), maxMessages, messageLength)
	return
}
