package sortedset

import "fmt"

// Kind is the tag of an Item's underlying value, restricted to the domain
// accepted by the value contract (spec.md §6).
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindAtom
	KindString
	KindTuple
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindAtom:
		return "atom"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Item is an opaque, immutable comparable value drawn from a domain with a
// total order, per spec.md §3 and §6. Construct one with Nil, Bool, Int,
// Atom, String, Tuple, List, or validate an arbitrary Go value at a
// boundary with FromAny.
type Item struct {
	kind Kind
	i    int64
	s    string
	seq  []Item
}

// Nil returns the unit/nil Item.
func Nil() Item { return Item{kind: KindNil} }

// Bool returns a boolean Item.
func Bool(b bool) Item {
	v := Item{kind: KindBool}
	if b {
		v.i = 1
	}
	return v
}

// Int returns an integer Item.
func Int(v int64) Item { return Item{kind: KindInt, i: v} }

// Atom returns a symbol/atom Item, distinct in kind from String.
func Atom(name string) Item { return Item{kind: KindAtom, s: name} }

// String returns a character-string Item.
func String(s string) Item { return Item{kind: KindString, s: s} }

// Tuple returns a fixed-arity ordered Item composed of accepted elements.
func Tuple(items ...Item) Item {
	seq := make([]Item, len(items))
	copy(seq, items)
	return Item{kind: KindTuple, seq: seq}
}

// List returns a variable-length ordered Item composed of accepted
// elements.
func List(items ...Item) Item {
	seq := make([]Item, len(items))
	copy(seq, items)
	return Item{kind: KindList, seq: seq}
}

// Kind reports the Item's tag.
func (it Item) Kind() Kind { return it.kind }

// Int64 returns the underlying integer for a KindInt Item.
func (it Item) Int64() int64 { return it.i }

// Bool reports the underlying boolean for a KindBool Item.
func (it Item) Bool() bool { return it.i != 0 }

// Str returns the underlying string for a KindAtom or KindString Item.
func (it Item) Str() string { return it.s }

// Elems returns the underlying elements for a KindTuple or KindList Item.
// The returned slice aliases the Item's storage and must not be mutated.
func (it Item) Elems() []Item { return it.seq }

// FromAny validates an arbitrary Go value at the boundary between host
// bindings and the core (spec.md §6) and converts it to an Item. Accepted:
// nil, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32
// (narrowed to int64), string, []interface{} (converted to a List), and
// Item itself. Rejected: float32/float64, uint64, uintptr, pointers,
// channels, functions, and any other kind, as well as a composite
// ([]interface{}) containing a rejected element — surfaced as
// ErrUnsupportedType.
//
// FromAny has no way to distinguish an intended atom from an intended
// string for a bare Go string; it always produces KindString. Use Atom
// directly when an atom is wanted.
func FromAny(v interface{}) (Item, error) {
	switch val := v.(type) {
	case nil:
		return Nil(), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case string:
		return String(val), nil
	case Item:
		if err := validate(val); err != nil {
			return Item{}, err
		}
		return val, nil
	case []interface{}:
		seq := make([]Item, len(val))
		for i, e := range val {
			converted, err := FromAny(e)
			if err != nil {
				return Item{}, err
			}
			seq[i] = converted
		}
		return List(seq...), nil
	default:
		return Item{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// validate recursively rejects a composite Item containing a malformed
// element. Items built exclusively through the package constructors are
// always well-formed; validate is applied to Items that arrive via
// FromAny's Item case and to the inputs of FromProperEnumerable and
// FromEnumerable.
func validate(it Item) error {
	switch it.kind {
	case KindNil, KindBool, KindInt, KindAtom, KindString:
		return nil
	case KindTuple, KindList:
		for _, e := range it.seq {
			if err := validate(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedType, it.kind)
	}
}

// Ordering is the result of comparing two Items.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare returns the total order relation between a and b: kind first
// (Nil < Bool < Int < Atom < String < Tuple < List), then the natural
// order within a kind, then element-wise lexicographic order within
// Tuple/List with the shorter sequence ordered first on a common prefix.
func Compare(a, b Item) Ordering {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return Less
		}
		return Greater
	}
	switch a.kind {
	case KindNil:
		return Equal
	case KindBool, KindInt:
		return compareInt64(a.i, b.i)
	case KindAtom, KindString:
		return compareString(a.s, b.s)
	case KindTuple, KindList:
		return compareSeq(a.seq, b.seq)
	default:
		return Equal
	}
}

func compareInt64(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareString(a, b string) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareSeq(a, b []Item) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != Equal {
			return c
		}
	}
	return compareInt64(int64(len(a)), int64(len(b)))
}

// ItemsEqual reports whether a and b occupy the same position in the total
// order, which by §3's contract means they are the same item.
func ItemsEqual(a, b Item) bool { return Compare(a, b) == Equal }
