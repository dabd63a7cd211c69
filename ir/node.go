// Package ir holds the in-memory representation of a JSON document.
//
// Objects keep their fields in two parallel slices so that key
// insertion order survives a parse/encode round trip; a map would
// lose it.
package ir

import "sort"

type Node struct {
	Type Type

	// Object fields and their values, index-aligned. Fields are
	// StringType nodes. For arrays only Values is used.
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	// Number keeps the source literal so re-encoding cannot change
	// the representation (1e14 stays 1e14).
	Number string
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dst.Fields[i] = yf.Clone()
	}
	for i, yv := range y.Values {
		dst.Values[i] = yv.Clone()
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromNumber takes the literal text of a JSON number.
func FromNumber(lit string) *Node {
	return &Node{Type: NumberType, Number: lit}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = ySlice
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Append adds a field to an object. If the field is already present,
// its value is replaced in place and the original key position kept.
func (y *Node) Append(key string, val *Node) {
	for i := range y.Fields {
		if y.Fields[i].String == key {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, val)
}

// SortFields orders object keys lexicographically, recursively.
// Array element order is untouched.
func (y *Node) SortFields() {
	switch y.Type {
	case ObjectType:
		idx := make([]int, len(y.Fields))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return y.Fields[idx[a]].String < y.Fields[idx[b]].String
		})
		fields := make([]*Node, len(idx))
		values := make([]*Node, len(idx))
		for i, j := range idx {
			fields[i] = y.Fields[j]
			values[i] = y.Values[j]
		}
		y.Fields = fields
		y.Values = values
		for _, yv := range y.Values {
			yv.SortFields()
		}
	case ArrayType:
		for _, yv := range y.Values {
			yv.SortFields()
		}
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
