// Package persist defines the flat record every world object and device
// serializes to, and the JSON encoding of those records.
//
// Records use short keys: "t" for an object type tag, "hwid" for a device
// type, "i" for the object id, "x" and "y" for the position. Everything else
// is type specific.
package persist

import (
	"bytes"
	"encoding/base64"
	"errors"
	"math"

	json "github.com/goccy/go-json"

	"github.com/ezrec/cubot/translate"
)

var f = translate.From

// Common record keys.
const (
	KEY_TYPE = "t"
	KEY_HWID = "hwid"
	KEY_ID   = "i"
	KEY_X    = "x"
	KEY_Y    = "y"
)

var (
	ErrFieldMissing = errors.New(f("field missing"))
	ErrFieldType    = errors.New(f("field has wrong type"))
)

// ErrField reports a record field that could not be read.
type ErrField struct {
	Key string
	Err error
}

func (err *ErrField) Error() string {
	return f("field %q: %v", err.Key, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

// Record is a flat persisted representation of an object or device.
type Record map[string]any

// Encode marshals any value (usually a Record, or a document of Records) to JSON.
func Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode unmarshals JSON into value. Numbers are kept exact.
func Decode(data []byte, value any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(value)
}

func (rec Record) field(key string) (value any, err error) {
	value, ok := rec[key]
	if !ok {
		err = &ErrField{Key: key, Err: ErrFieldMissing}
	}
	return
}

func toInt64(value any) (n int64, ok bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case float64:
		if v != math.Trunc(v) {
			return
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}
	return
}

// Int64 reads an integer field.
func (rec Record) Int64(key string) (n int64, err error) {
	value, err := rec.field(key)
	if err != nil {
		return
	}

	n, ok := toInt64(value)
	if !ok {
		err = &ErrField{Key: key, Err: ErrFieldType}
	}
	return
}

// Int reads an integer field.
func (rec Record) Int(key string) (n int, err error) {
	n64, err := rec.Int64(key)
	n = int(n64)
	return
}

// Int64s reads a list of integers.
func (rec Record) Int64s(key string) (list []int64, err error) {
	value, err := rec.field(key)
	if err != nil {
		return
	}

	switch v := value.(type) {
	case []int64:
		list = append(list, v...)
	case []any:
		list = make([]int64, 0, len(v))
		for _, item := range v {
			n, ok := toInt64(item)
			if !ok {
				err = &ErrField{Key: key, Err: ErrFieldType}
				return
			}
			list = append(list, n)
		}
	default:
		err = &ErrField{Key: key, Err: ErrFieldType}
	}
	return
}

// Records reads a list of nested records.
func (rec Record) Records(key string) (list []Record, err error) {
	value, err := rec.field(key)
	if err != nil {
		return
	}

	switch v := value.(type) {
	case []Record:
		list = append(list, v...)
	case []any:
		list = make([]Record, 0, len(v))
		for _, item := range v {
			switch sub := item.(type) {
			case Record:
				list = append(list, sub)
			case map[string]any:
				list = append(list, Record(sub))
			default:
				err = &ErrField{Key: key, Err: ErrFieldType}
				return
			}
		}
	default:
		err = &ErrField{Key: key, Err: ErrFieldType}
	}
	return
}

// Bytes reads a binary field. Binary data is stored as base64 text,
// which is how []byte values are encoded.
func (rec Record) Bytes(key string) (data []byte, err error) {
	value, err := rec.field(key)
	if err != nil {
		return
	}

	switch v := value.(type) {
	case []byte:
		data = append(data, v...)
	case string:
		data, err = base64.StdEncoding.DecodeString(v)
		if err != nil {
			err = &ErrField{Key: key, Err: err}
		}
	default:
		err = &ErrField{Key: key, Err: ErrFieldType}
	}
	return
}
