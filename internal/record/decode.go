package record

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

// Decoding errors.
var (
	ErrNotArray  = errors.New("expected a JSON array of records")
	ErrNotObject = errors.New("expected a JSON object")
)

// DecodeRecords parses a JSON array of objects into records, preserving key
// order. Elements that are not objects are skipped and counted in skipped.
func DecodeRecords(data []byte) (records []Record, skipped int, err error) {
	_, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing response: %w", err)
	}
	if dataType != jsonparser.Array {
		return nil, 0, fmt.Errorf("%w: got %s", ErrNotArray, dataType)
	}

	records = []Record{}
	var elemErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if elemErr != nil {
			return
		}
		if dt != jsonparser.Object {
			skipped++
			return
		}
		obj, decodeErr := decodeObject(value)
		if decodeErr != nil {
			elemErr = decodeErr
			return
		}
		records = append(records, *obj)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("parsing response: %w", err)
	}
	if elemErr != nil {
		return nil, 0, elemErr
	}
	return records, skipped, nil
}

// DecodeObject parses a single JSON object.
func DecodeObject(data []byte) (*Object, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("parsing object: %w", err)
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, dataType)
	}
	return decodeObject(value)
}

// MustDecodeObject is DecodeObject for literals known to be valid.
func MustDecodeObject(data string) *Object {
	obj, err := DecodeObject([]byte(data))
	if err != nil {
		panic(err)
	}
	return obj
}

func decodeObject(data []byte) (*Object, error) {
	obj := NewObject()
	err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		// ObjectEach hands keys over already unescaped.
		name := string(key)
		v, err := decodeValue(value, dt)
		if err != nil {
			return fmt.Errorf("decoding field %q: %w", name, err)
		}
		obj.Set(name, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	obj.orderIndexKeysFirst()
	return obj, nil
}

// decodeArray maps an array onto an object keyed by element index.
func decodeArray(data []byte) (*Object, error) {
	obj := NewObject()
	var elemErr error
	i := 0
	_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if elemErr != nil {
			return
		}
		v, err := decodeValue(value, dt)
		if err != nil {
			elemErr = fmt.Errorf("decoding element %d: %w", i, err)
			return
		}
		obj.Set(strconv.Itoa(i), v)
		i++
	})
	if err != nil {
		return nil, err
	}
	if elemErr != nil {
		return nil, elemErr
	}
	return obj, nil
}

func decodeValue(value []byte, dt jsonparser.ValueType) (Value, error) {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case jsonparser.Number:
		n, err := jsonparser.ParseFloat(value)
		if err != nil {
			return Value{}, err
		}
		return Number(n), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Object:
		obj, err := decodeObject(value)
		if err != nil {
			return Value{}, err
		}
		return Nested(obj), nil
	case jsonparser.Array:
		obj, err := decodeArray(value)
		if err != nil {
			return Value{}, err
		}
		return Nested(obj), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value type %s", dt)
	}
}
