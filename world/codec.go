package world

import (
	"errors"
	"maps"
	"slices"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/persist"
)

var (
	ErrTypeUnknown = errors.New(f("object type unknown"))
)

// Decoder rebuilds an object from its record.
type Decoder func(rec persist.Record) (Object, error)

// Codec saves and loads worlds, using a table of decoders keyed by the
// record type tag.
type Codec struct {
	decoders map[int]Decoder
}

// NewCodec creates a codec with no object types.
func NewCodec() *Codec {
	return &Codec{decoders: make(map[int]Decoder)}
}

// Register sets the decoder for an object type tag.
func (codec *Codec) Register(tag int, decoder Decoder) {
	codec.decoders[tag] = decoder
}

// Types returns the registered type tags, in ascending order.
func (codec *Codec) Types() []int {
	return slices.Sorted(maps.Keys(codec.decoders))
}

// document is the saved world layout.
type document struct {
	Size    int              `json:"size"`
	X       int              `json:"x"`
	Y       int              `json:"y"`
	Next    int64            `json:"next"`
	Tiles   []uint16         `json:"tiles"`
	Objects []persist.Record `json:"objects"`
}

// Save encodes a world and all of its objects.
func (codec *Codec) Save(w *World) ([]byte, error) {
	doc := document{
		Size:    w.size,
		X:       w.x,
		Y:       w.y,
		Next:    int64(w.nextID),
		Tiles:   w.tiles,
		Objects: make([]persist.Record, 0, len(w.objects)),
	}

	for _, obj := range w.objects {
		doc.Objects = append(doc.Objects, obj.Marshal())
	}

	return persist.Encode(&doc)
}

// Decode rebuilds a single object.
func (codec *Codec) Decode(rec persist.Record) (obj Object, err error) {
	tag, err := rec.Int(persist.KEY_TYPE)
	if err != nil {
		return
	}

	decoder, ok := codec.decoders[tag]
	if !ok {
		err = ErrTypeUnknown
		return
	}

	return decoder(rec)
}

// Load decodes a saved world.
//
// A record that cannot be decoded costs only that object: it is logged
// and skipped, and the rest of the world still loads. In that case both the
// world and the joined per-object errors are returned. A malformed document
// returns a nil world.
func (codec *Codec) Load(data []byte) (w *World, err error) {
	var doc document
	err = persist.Decode(data, &doc)
	if err != nil {
		return
	}

	if doc.Size <= 0 || doc.Size > len(doc.Tiles) || len(doc.Tiles) != doc.Size*doc.Size {
		err = ErrWorldSize
		return
	}

	w = NewWorld(doc.Size, doc.X, doc.Y)
	copy(w.tiles, doc.Tiles)

	var errs []error
	for index, rec := range doc.Objects {
		tag, _ := rec.Int(persist.KEY_TYPE)

		obj, decodeErr := codec.Decode(rec)
		if decodeErr == nil {
			decodeErr = w.AddObject(obj)
		}
		if decodeErr != nil {
			decodeErr = pkgerrors.Wrapf(decodeErr, "object %d (t=%d)", index, tag)
			logrus.Warnf("world: load: skipping %v", decodeErr)
			errs = append(errs, decodeErr)
			continue
		}
	}

	if ObjectID(doc.Next) > w.nextID {
		w.nextID = ObjectID(doc.Next)
	}

	logrus.Infof("world: loaded %d objects, %d skipped", w.ObjectCount(), len(errs))

	err = errors.Join(errs...)
	return
}
