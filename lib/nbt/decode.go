package nbt

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxDepth bounds how many nested tag streams (byte arrays that
// are themselves compressed tag trees, e.g. gift-wrapped items) will be
// decoded in place before giving up with ErrTooDeep. The remote data is
// not adversarial by contract but is not trusted either.
const DefaultMaxDepth = 16

// Decode parses a base64 string holding a gzip-compressed tag stream and
// returns the root compound.
func Decode(b64 string) (Tag, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %s", ErrCompression, err)
	}
	return DecodeRaw(raw, DefaultMaxDepth)
}

// DecodeRaw parses an already base64-decoded compressed tag stream.
func DecodeRaw(raw []byte, maxDepth int) (Tag, error) {
	if maxDepth <= 0 {
		return Tag{}, ErrTooDeep
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %s", ErrCompression, err)
	}
	defer zr.Close()

	stream, err := io.ReadAll(zr)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %s", ErrCompression, err)
	}

	d := &decoder{r: bytes.NewReader(stream), maxDepth: maxDepth}

	kind, err := d.readKind()
	if err != nil {
		return Tag{}, err
	}
	if kind != KindCompound {
		return Tag{}, fmt.Errorf("%w: root tag kind %d is not a compound", ErrMalformed, kind)
	}
	// root name, unused
	if _, err := d.readString(); err != nil {
		return Tag{}, err
	}
	return d.readPayload(KindCompound)
}

type decoder struct {
	r        *bytes.Reader
	maxDepth int
}

func (d *decoder) readKind() (Kind, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return KindEnd, fmt.Errorf("%w: truncated tag kind", ErrMalformed)
	}
	if b > byte(KindLongArray) {
		return KindEnd, fmt.Errorf("%w: unknown tag kind %d", ErrMalformed, b)
	}
	return Kind(b), nil
}

func (d *decoder) read(buf []byte) error {
	_, err := io.ReadFull(d.r, buf)
	if err != nil {
		return fmt.Errorf("%w: truncated stream", ErrMalformed)
	}
	return nil
}

func (d *decoder) readUint16() (uint16, error) {
	var buf [2]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (d *decoder) readInt32() (int32, error) {
	var buf [4]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *decoder) readInt64() (int64, error) {
	var buf [8]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (d *decoder) readString() (string, error) {
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if err := d.read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (d *decoder) readLength() (int, error) {
	n, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length prefix %d", ErrMalformed, n)
	}
	if int64(n) > int64(d.r.Len()) {
		return 0, fmt.Errorf("%w: length prefix %d exceeds remaining input", ErrMalformed, n)
	}
	return int(n), nil
}

func (d *decoder) readPayload(kind Kind) (Tag, error) {
	switch kind {
	case KindByte:
		b, err := d.r.ReadByte()
		if err != nil {
			return Tag{}, fmt.Errorf("%w: truncated byte tag", ErrMalformed)
		}
		return ByteTag(int8(b)), nil
	case KindShort:
		n, err := d.readUint16()
		if err != nil {
			return Tag{}, err
		}
		return ShortTag(int16(n)), nil
	case KindInt:
		n, err := d.readInt32()
		if err != nil {
			return Tag{}, err
		}
		return IntTag(n), nil
	case KindLong:
		n, err := d.readInt64()
		if err != nil {
			return Tag{}, err
		}
		return LongTag(n), nil
	case KindFloat:
		n, err := d.readInt32()
		if err != nil {
			return Tag{}, err
		}
		return FloatTag(math.Float32frombits(uint32(n))), nil
	case KindDouble:
		n, err := d.readInt64()
		if err != nil {
			return Tag{}, err
		}
		return DoubleTag(math.Float64frombits(uint64(n))), nil
	case KindString:
		s, err := d.readString()
		if err != nil {
			return Tag{}, err
		}
		return StringTag(s), nil
	case KindByteArray:
		n, err := d.readLength()
		if err != nil {
			return Tag{}, err
		}
		buf := make([]byte, n)
		if err := d.read(buf); err != nil {
			return Tag{}, err
		}
		return d.byteArrayTag(buf)
	case KindIntArray:
		n, err := d.readLength()
		if err != nil {
			return Tag{}, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := d.readInt32()
			if err != nil {
				return Tag{}, err
			}
			out[i] = v
		}
		return Tag{Kind: KindIntArray, Ints: out}, nil
	case KindLongArray:
		n, err := d.readLength()
		if err != nil {
			return Tag{}, err
		}
		out := make([]int64, n)
		for i := range out {
			v, err := d.readInt64()
			if err != nil {
				return Tag{}, err
			}
			out[i] = v
		}
		return Tag{Kind: KindLongArray, Longs: out}, nil
	case KindList:
		return d.readList()
	case KindCompound:
		return d.readCompound()
	}
	return Tag{}, fmt.Errorf("%w: unexpected tag kind %d", ErrMalformed, kind)
}

func (d *decoder) readList() (Tag, error) {
	elemKind, err := d.readKind()
	if err != nil {
		return Tag{}, err
	}
	n, err := d.readLength()
	if err != nil {
		return Tag{}, err
	}
	if n > 0 && elemKind == KindEnd {
		return Tag{}, fmt.Errorf("%w: non-empty list of end tags", ErrMalformed)
	}
	elems := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		elem, err := d.readPayload(elemKind)
		if err != nil {
			return Tag{}, err
		}
		elems = append(elems, elem)
	}
	return ListTag(elemKind, elems...), nil
}

func (d *decoder) readCompound() (Tag, error) {
	c := NewCompound()
	for {
		kind, err := d.readKind()
		if err != nil {
			return Tag{}, err
		}
		if kind == KindEnd {
			return CompoundTag(c), nil
		}
		name, err := d.readString()
		if err != nil {
			return Tag{}, err
		}
		if _, exists := c.Get(name); exists {
			return Tag{}, fmt.Errorf("%w: duplicate compound entry %q", ErrMalformed, name)
		}
		value, err := d.readPayload(kind)
		if err != nil {
			return Tag{}, err
		}
		c.Set(name, value)
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

// byteArrayTag turns a raw byte-array payload into a tag. Byte arrays
// carrying a compressed tag stream of their own (gift-wrapped and
// bundled item stacks) are decoded in place, one depth level down.
func (d *decoder) byteArrayTag(buf []byte) (Tag, error) {
	if !bytes.HasPrefix(buf, gzipMagic) {
		return Tag{Kind: KindByteArray, Bytes: buf}, nil
	}
	nested, err := DecodeRaw(buf, d.maxDepth-1)
	if err != nil {
		return Tag{}, err
	}
	return nested, nil
}
