package absacc

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// fieldFunc consumes the value of a single field from b, returning the number
// of bytes read.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// consumeFields walks every tagged field in b in wire order.
func consumeFields(msg string, b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return newDecodeError(msg, 0, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}

	return nil
}

// skipField discards a field this schema does not know about.
func skipField(msg string, num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, newDecodeError(msg, num, protowire.ParseError(n))
	}

	return n, nil
}

func checkType(msg string, num protowire.Number, actual, expected protowire.Type) error {
	if actual != expected {
		return newDecodeError(msg, num, errors.Errorf("unexpected wire type %d (expected %d)", actual, expected))
	}

	return nil
}

func consumeUint64(msg string, num protowire.Number, typ protowire.Type, b []byte) (uint64, int, error) {
	if err := checkType(msg, num, typ, protowire.VarintType); err != nil {
		return 0, 0, err
	}

	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, newDecodeError(msg, num, protowire.ParseError(n))
	}

	return v, n, nil
}

func consumeRaw(msg string, num protowire.Number, typ protowire.Type, b []byte) ([]byte, int, error) {
	if err := checkType(msg, num, typ, protowire.BytesType); err != nil {
		return nil, 0, err
	}

	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, newDecodeError(msg, num, protowire.ParseError(n))
	}

	return v, n, nil
}

// consumeBytes returns a copy of the field value so decoded messages never
// alias the input buffer. Empty values decode to nil.
func consumeBytes(msg string, num protowire.Number, typ protowire.Type, b []byte) ([]byte, int, error) {
	v, n, err := consumeRaw(msg, num, typ, b)
	if err != nil {
		return nil, 0, err
	}

	return append([]byte(nil), v...), n, nil
}

func consumeString(msg string, num protowire.Number, typ protowire.Type, b []byte) (string, int, error) {
	v, n, err := consumeRaw(msg, num, typ, b)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(v) {
		return "", 0, newDecodeError(msg, num, errors.New("invalid utf-8 in string field"))
	}

	return string(v), n, nil
}

// The append helpers follow proto3 semantics: default values are not written.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func sizeString(num protowire.Number, v string) int {
	if v == "" {
		return 0
	}

	return protowire.SizeTag(num) + protowire.SizeBytes(len(v))
}

func sizeBytes(num protowire.Number, v []byte) int {
	if len(v) == 0 {
		return 0
	}

	return protowire.SizeTag(num) + protowire.SizeBytes(len(v))
}

func sizeUint64(num protowire.Number, v uint64) int {
	if v == 0 {
		return 0
	}

	return protowire.SizeTag(num) + protowire.SizeVarint(v)
}
