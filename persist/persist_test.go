package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rec := Record{
		KEY_ID:   int64(77),
		KEY_X:    3,
		KEY_Y:    -4,
		KEY_TYPE: 3,
		"n":      []int64{10, 11, 12},
		"m":      []byte{1, 2, 3, 0xff},
		"hw":     []Record{{KEY_HWID: 3, "cubot": int64(77)}},
	}

	data, err := Encode(rec)
	assert.NoError(err)

	var back Record
	assert.NoError(Decode(data, &back))

	id, err := back.Int64(KEY_ID)
	assert.NoError(err)
	assert.Equal(int64(77), id)

	y, err := back.Int(KEY_Y)
	assert.NoError(err)
	assert.Equal(-4, y)

	ids, err := back.Int64s("n")
	assert.NoError(err)
	assert.Equal([]int64{10, 11, 12}, ids)

	mem, err := back.Bytes("m")
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 0xff}, mem)

	hw, err := back.Records("hw")
	assert.NoError(err)
	if assert.Len(hw, 1) {
		cubot, err := hw[0].Int64("cubot")
		assert.NoError(err)
		assert.Equal(int64(77), cubot)
	}
}

func TestRecordErrors(t *testing.T) {
	assert := assert.New(t)

	rec := Record{"s": "text", "f": 1.5, "l": []any{1, "two"}}

	_, err := rec.Int("missing")
	assert.ErrorIs(err, ErrFieldMissing)

	_, err = rec.Int("s")
	assert.ErrorIs(err, ErrFieldType)

	_, err = rec.Int("f")
	assert.ErrorIs(err, ErrFieldType)

	_, err = rec.Int64s("l")
	assert.ErrorIs(err, ErrFieldType)

	_, err = rec.Records("s")
	assert.ErrorIs(err, ErrFieldType)

	_, err = rec.Bytes("f")
	assert.ErrorIs(err, ErrFieldType)

	var field *ErrField
	assert.ErrorAs(err, &field)
	assert.Equal("f", field.Key)
}
