package toyjson

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// JSONType is an enum for any JSON-types
type JSONType uint8

// JSONTypes to compare values with. The zero value signals invalid.
const (
	InvalidType JSONType = iota
	NullType
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t JSONType) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed JSON document.
// Depending on its type it holds a different payload:
//     JSONType	Payload
//     Null	none
//     Bool	bool
//     Number	Number
//     String	string
//     Array	[]Value
//     Object	[]Member in insertion order
// The zero Value has InvalidType.
type Value struct {
	typ     JSONType
	b       bool
	num     Number
	str     string
	elems   []Value
	members []Member
	index   map[string]int
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

func NullValue() Value { return Value{typ: NullType} }

func BoolValue(b bool) Value { return Value{typ: BoolType, b: b} }

func NumberValue(n Number) Value { return Value{typ: NumberType, num: n} }

func IntValue(i int64) Value { return NumberValue(IntNumber(i)) }

func FloatValue(f float64) Value { return NumberValue(FloatNumber(f)) }

func StringValue(s string) Value { return Value{typ: StringType, str: s} }

// ArrayValue returns an array holding elems.
func ArrayValue(elems ...Value) Value {
	return Value{typ: ArrayType, elems: elems}
}

// ObjectValue returns an object holding members. A repeated key keeps the
// position of its first occurrence and the value of its last.
func ObjectValue(members ...Member) Value {
	var b objectBuilder
	for _, m := range members {
		b.set(m.Key, m.Value)
	}
	return b.value()
}

// objectBuilder collects members while an object is parsed.
type objectBuilder struct {
	members []Member
	index   map[string]int
}

func (b *objectBuilder) set(key string, v Value) {
	if i, ok := b.index[key]; ok {
		b.members[i].Value = v
		return
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[key] = len(b.members)
	b.members = append(b.members, Member{Key: key, Value: v})
}

func (b *objectBuilder) value() Value {
	return Value{typ: ObjectType, members: b.members, index: b.index}
}

// Type returns the JSONType of v.
func (v Value) Type() JSONType {
	return v.typ
}

// Bool returns the payload of a Bool value and false for any other type.
func (v Value) Bool() bool {
	return v.b
}

// Number returns the payload of a Number value.
func (v Value) Number() Number {
	return v.num
}

// Str returns the payload of a String value.
func (v Value) Str() string {
	return v.str
}

// Elems returns the elements of an array. The slice must not be modified.
func (v Value) Elems() []Value {
	return v.elems
}

// Members returns the members of an object in insertion order. The slice
// must not be modified.
func (v Value) Members() []Member {
	return v.members
}

// Keys returns the keys of an object in insertion order.
func (v Value) Keys() []string {
	if v.typ != ObjectType {
		return nil
	}
	ss := make([]string, len(v.members))
	for i, m := range v.members {
		ss[i] = m.Key
	}
	return ss
}

// Get returns the value stored under key in an object.
func (v Value) Get(key string) (Value, bool) {
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.members[i].Value, true
}

// Len gives the length of an array or items in an object.
func (v Value) Len() int {
	switch v.typ {
	case ArrayType:
		return len(v.elems)
	case ObjectType:
		return len(v.members)
	case InvalidType:
		return 0
	default:
		return 1
	}
}

// Total returns the number of values held by v, v included.
func (v Value) Total() int {
	switch v.typ {
	case ArrayType:
		n := 1
		for _, e := range v.elems {
			n += e.Total()
		}
		return n
	case ObjectType:
		n := 1
		for _, m := range v.members {
			n += m.Value.Total()
		}
		return n
	default:
		return v.Len()
	}
}

// Child returns the element at index name of an array or the member named
// name of an object.
func (v Value) Child(name string) (Value, error) {
	switch v.typ {
	case ObjectType:
		c, ok := v.Get(name)
		if !ok {
			return Value{}, errors.Wrapf(ErrNoChild, "key %q", name)
		}
		return c, nil
	case ArrayType:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(v.elems) {
			return Value{}, errors.Wrapf(ErrNoChild, "index %q", name)
		}
		return v.elems[i], nil
	default:
		return Value{}, errors.Wrapf(ErrNotArrayOrObject, "is %s", v.typ)
	}
}

// Lookup returns the value specified by a dot separated path of keys and
// indices, like "servlet.0.init-param". The empty path returns v itself.
func (v Value) Lookup(path string) (Value, error) {
	if path == "" {
		return v, nil
	}
	cur := v
	for _, key := range strings.Split(path, ".") {
		c, err := cur.Child(key)
		if err != nil {
			return Value{}, errors.Wrapf(err, "lookup %q", path)
		}
		cur = c
	}
	return cur, nil
}

// Walk calls fn for every leaf of v in document order: scalars and empty
// arrays or objects. The path is dot separated like in Lookup.
// Walk stops at the first error returned by fn.
func (v Value) Walk(fn func(path string, leaf Value) error) error {
	return walk(v, "", fn)
}

func walk(v Value, path string, fn func(string, Value) error) error {
	join := func(key string) string {
		if path == "" {
			return key
		}
		return path + "." + key
	}
	switch {
	case v.typ == ArrayType && len(v.elems) > 0:
		for i, e := range v.elems {
			if err := walk(e, join(strconv.Itoa(i)), fn); err != nil {
				return err
			}
		}
		return nil
	case v.typ == ObjectType && len(v.members) > 0:
		for _, m := range v.members {
			if err := walk(m.Value, join(m.Key), fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return fn(path, v)
	}
}

// Interface creates the Go representation of v.
// Like encoding/json the possible underlying types are:
//     Object    map[string]interface{}
//     Array     []interface{}
//     String    string
//     Number    int64 or float64
//     Bool      bool
//     Null      nil
func (v Value) Interface() interface{} {
	switch v.typ {
	case BoolType:
		return v.b
	case NumberType:
		if i, ok := v.num.Int64(); ok {
			return i
		}
		return v.num.Float64()
	case StringType:
		return v.str
	case ArrayType:
		s := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			s[i] = e.Interface()
		}
		return s
	case ObjectType:
		m := make(map[string]interface{}, len(v.members))
		for _, f := range v.members {
			m[f.Key] = f.Value.Interface()
		}
		return m
	default:
		return nil
	}
}

// Equal compares the values and all their children. Object member order is
// arbitrary; integer and floating-point Numbers are never equal.
func Equal(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case BoolType:
		return a.b == b.b
	case NumberType:
		return a.num == b.num
	case StringType:
		return a.str == b.str
	case ArrayType:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			o, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
