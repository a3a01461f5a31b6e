package xmltree

import (
	"strconv"
)

// ValueField is the reserved field under which a node's own text is stored
// when the node also carries attributes or children.
const ValueField = "_value"

type Kind int

const (
	// KindNone marks an element that was present but empty.
	KindNone Kind = iota
	KindInt
	KindString
	KindNode
	KindRowset
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindNode:
		return "node"
	case KindRowset:
		return "rowset"
	}
	return "unknown"
}

// Value is a decoded element: a scalar, the no-value marker, a node or a
// rowset. The zero Value is the no-value marker.
type Value struct {
	kind Kind
	i    int64
	s    string
	node *Node
	rows []Value
}

// None returns the no-value marker.
func None() Value { return Value{} }

func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func NodeValue(n *Node) Value { return Value{kind: KindNode, node: n} }

func RowsetValue(rows []Value) Value {
	if rows == nil {
		rows = []Value{}
	}
	return Value{kind: KindRowset, rows: rows}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Node() (*Node, bool) {
	if v.kind != KindNode {
		return nil, false
	}
	return v.node, true
}

func (v Value) Rows() ([]Value, bool) {
	if v.kind != KindRowset {
		return nil, false
	}
	return v.rows, true
}

// Len is the number of rows for a rowset, the number of fields for a node
// and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindRowset:
		return len(v.rows)
	case KindNode:
		return v.node.Len()
	}
	return 0
}

// Index returns the i-th row of a rowset.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindRowset || i < 0 || i >= len(v.rows) {
		return Value{}, false
	}
	return v.rows[i], true
}

// Get walks node fields by name, ok is false as soon as a step is absent or
// lands on something that isn't a node.
func (v Value) Get(path ...string) (Value, bool) {
	current := v
	for _, name := range path {
		node, ok := current.Node()
		if !ok {
			return Value{}, false
		}
		current, ok = node.Get(name)
		if !ok {
			return Value{}, false
		}
	}
	return current, true
}

// String renders scalars as their text, the no-value marker as an empty
// string and containers as their JSON form.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	}
	out, err := v.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// Node is a dynamically shaped record built from one element: one field per
// attribute and one per child element.
type Node struct {
	names  []string
	fields map[string]Value
}

func NewNode() *Node {
	return &Node{fields: map[string]Value{}}
}

// Set assigns a field. Assigning a name that already exists replaces its
// value and keeps its original position.
func (n *Node) Set(name string, value Value) {
	if _, exists := n.fields[name]; !exists {
		n.names = append(n.names, name)
	}
	n.fields[name] = value
}

func (n *Node) Get(name string) (Value, bool) {
	if n == nil {
		return Value{}, false
	}
	v, ok := n.fields[name]
	return v, ok
}

// Fields returns field names in the order they were first assigned.
func (n *Node) Fields() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.names)
}

// Text returns the raw text stored under ValueField.
func (n *Node) Text() (string, bool) {
	v, ok := n.Get(ValueField)
	if !ok {
		return "", false
	}
	return v.Str()
}
