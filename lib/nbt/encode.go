package nbt

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/gzip"
)

// Encode is the inverse of Decode. It exists for fixture generation:
// production code only ever consumes tag streams, it never produces them.
func Encode(root Tag) (string, error) {
	if root.Kind != KindCompound {
		return "", fmt.Errorf("nbt: can only encode a compound root, got kind %d", root.Kind)
	}

	var payload bytes.Buffer
	e := &encoder{w: &payload}
	e.writeByte(byte(KindCompound))
	e.writeString("")
	if err := e.writePayload(root); err != nil {
		return "", err
	}

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(payload.Bytes()); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(compressed.Bytes()), nil
}

type encoder struct {
	w *bytes.Buffer
}

func (e *encoder) writeByte(b byte) {
	e.w.WriteByte(b)
}

func (e *encoder) writeUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	e.w.Write(buf[:])
}

func (e *encoder) writeInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	e.w.Write(buf[:])
}

func (e *encoder) writeInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	e.w.Write(buf[:])
}

func (e *encoder) writeString(s string) {
	e.writeUint16(uint16(len(s)))
	e.w.WriteString(s)
}

func (e *encoder) writePayload(t Tag) error {
	switch t.Kind {
	case KindByte:
		e.writeByte(byte(t.Byte))
	case KindShort:
		e.writeUint16(uint16(t.Short))
	case KindInt:
		e.writeInt32(t.Int)
	case KindLong:
		e.writeInt64(t.Long)
	case KindFloat:
		e.writeInt32(int32(math.Float32bits(t.Float)))
	case KindDouble:
		e.writeInt64(int64(math.Float64bits(t.Double)))
	case KindString:
		e.writeString(t.Str)
	case KindByteArray:
		e.writeInt32(int32(len(t.Bytes)))
		e.w.Write(t.Bytes)
	case KindIntArray:
		e.writeInt32(int32(len(t.Ints)))
		for _, v := range t.Ints {
			e.writeInt32(v)
		}
	case KindLongArray:
		e.writeInt32(int32(len(t.Longs)))
		for _, v := range t.Longs {
			e.writeInt64(v)
		}
	case KindList:
		e.writeByte(byte(t.ListKind))
		e.writeInt32(int32(len(t.List)))
		for _, elem := range t.List {
			if elem.Kind != t.ListKind {
				return fmt.Errorf("nbt: list element kind %d does not match list kind %d", elem.Kind, t.ListKind)
			}
			if err := e.writePayload(elem); err != nil {
				return err
			}
		}
	case KindCompound:
		for _, name := range t.Compound.Names() {
			value, _ := t.Compound.Get(name)
			e.writeByte(byte(value.Kind))
			e.writeString(name)
			if err := e.writePayload(value); err != nil {
				return err
			}
		}
		e.writeByte(byte(KindEnd))
	default:
		return fmt.Errorf("nbt: cannot encode tag kind %d", t.Kind)
	}
	return nil
}
