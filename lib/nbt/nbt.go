// Package nbt decodes the compressed binary tag trees the game attaches
// to item payloads (the `item_bytes` / `inv_contents.data` fields).
package nbt

import (
	"errors"
)

type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

var (
	ErrCompression = errors.New("nbt: payload is not a valid compressed stream")
	ErrMalformed   = errors.New("nbt: malformed tag stream")
	ErrTooDeep     = errors.New("nbt: nested tag streams exceed recursion limit")
)

// Tag is one node of a decoded tag tree. Kind selects which of the value
// fields is meaningful. Tags are immutable once returned by Decode.
type Tag struct {
	Kind Kind

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string
	Bytes  []byte
	Ints   []int32
	Longs  []int64

	// List elements are homogeneous, ListKind records their shared kind.
	List     []Tag
	ListKind Kind

	Compound *Compound
}

// Compound is a name -> Tag mapping that preserves insertion order.
// Entry names are unique within their parent.
type Compound struct {
	names  []string
	values map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{values: map[string]Tag{}}
}

func (c *Compound) Set(name string, t Tag) {
	if _, exists := c.values[name]; !exists {
		c.names = append(c.names, name)
	}
	c.values[name] = t
}

func (c *Compound) Get(name string) (Tag, bool) {
	t, ok := c.values[name]
	return t, ok
}

func (c *Compound) Names() []string {
	return c.names
}

func (c *Compound) Len() int {
	return len(c.names)
}

// Equal reports deep equality, which also lets go-cmp diff compounds
// without reaching into unexported fields.
func (c *Compound) Equal(o *Compound) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.names) != len(o.names) {
		return false
	}
	for i, name := range c.names {
		if o.names[i] != name {
			return false
		}
		if !c.values[name].Equal(o.values[name]) {
			return false
		}
	}
	return true
}

func (t Tag) Equal(o Tag) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindEnd:
		return true
	case KindByte:
		return t.Byte == o.Byte
	case KindShort:
		return t.Short == o.Short
	case KindInt:
		return t.Int == o.Int
	case KindLong:
		return t.Long == o.Long
	case KindFloat:
		return t.Float == o.Float
	case KindDouble:
		return t.Double == o.Double
	case KindString:
		return t.Str == o.Str
	case KindByteArray:
		if len(t.Bytes) != len(o.Bytes) {
			return false
		}
		for i := range t.Bytes {
			if t.Bytes[i] != o.Bytes[i] {
				return false
			}
		}
		return true
	case KindIntArray:
		if len(t.Ints) != len(o.Ints) {
			return false
		}
		for i := range t.Ints {
			if t.Ints[i] != o.Ints[i] {
				return false
			}
		}
		return true
	case KindLongArray:
		if len(t.Longs) != len(o.Longs) {
			return false
		}
		for i := range t.Longs {
			if t.Longs[i] != o.Longs[i] {
				return false
			}
		}
		return true
	case KindList:
		if t.ListKind != o.ListKind || len(t.List) != len(o.List) {
			return false
		}
		for i := range t.List {
			if !t.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindCompound:
		return t.Compound.Equal(o.Compound)
	}
	return false
}

// At walks nested compounds by name. It returns false if any step is
// missing or not a compound.
func (t Tag) At(path ...string) (Tag, bool) {
	cur := t
	for _, name := range path {
		if cur.Kind != KindCompound || cur.Compound == nil {
			return Tag{}, false
		}
		next, ok := cur.Compound.Get(name)
		if !ok {
			return Tag{}, false
		}
		cur = next
	}
	return cur, true
}

// Index returns the i-th element of a list tag.
func (t Tag) Index(i int) (Tag, bool) {
	if t.Kind != KindList || i < 0 || i >= len(t.List) {
		return Tag{}, false
	}
	return t.List[i], true
}

func ByteTag(v int8) Tag      { return Tag{Kind: KindByte, Byte: v} }
func ShortTag(v int16) Tag    { return Tag{Kind: KindShort, Short: v} }
func IntTag(v int32) Tag      { return Tag{Kind: KindInt, Int: v} }
func LongTag(v int64) Tag     { return Tag{Kind: KindLong, Long: v} }
func FloatTag(v float32) Tag  { return Tag{Kind: KindFloat, Float: v} }
func DoubleTag(v float64) Tag { return Tag{Kind: KindDouble, Double: v} }
func StringTag(v string) Tag  { return Tag{Kind: KindString, Str: v} }

func ListTag(kind Kind, elems ...Tag) Tag {
	return Tag{Kind: KindList, ListKind: kind, List: elems}
}

func CompoundTag(c *Compound) Tag {
	if c == nil {
		c = NewCompound()
	}
	return Tag{Kind: KindCompound, Compound: c}
}
