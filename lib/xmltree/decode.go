// Package xmltree decodes arbitrary XML documents into a tree of generic
// values without a schema.
//
// Every element becomes one of:
//   - a *Node, when it carries attributes or child elements. Attributes and
//     children become fields named after the attribute or child tag, and any
//     leading text is kept verbatim under ValueField.
//   - a rowset, when its tag is "rowset". Its children become an ordered list
//     installed in the parent under the rowset's name attribute.
//   - a scalar, when it only holds text. Integer literals become ints.
//   - the no-value marker, when it is empty.
//
// Field names are not checked for collisions, a later attribute or child with
// the same name replaces the earlier one.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const rowsetTag = "rowset"

var ErrNoRoot = errors.New("xmltree: document has no root element")

// Decode reads a single XML document and returns its root element decoded.
func Decode(r io.Reader) (Value, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root Value
	found := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Value{}, fmt.Errorf("xmltree: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if found {
				return Value{}, fmt.Errorf("xmltree: unexpected element <%s> after root element", t.Name.Local)
			}
			root, _, err = decodeElement(dec, t)
			if err != nil {
				return Value{}, err
			}
			found = true
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return Value{}, fmt.Errorf("xmltree: unexpected text outside of root element")
			}
		}
	}

	if !found {
		return Value{}, ErrNoRoot
	}
	return root, nil
}

func DecodeBytes(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func DecodeString(data string) (Value, error) {
	return Decode(strings.NewReader(data))
}

// decodeElement consumes tokens up to and including the end of start and
// returns the decoded element with the name its parent should install it
// under.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (Value, string, error) {
	if start.Name.Local == rowsetTag {
		return decodeRowset(dec, start)
	}

	var node *Node
	attrs := attributes(start)
	if len(attrs) > 0 {
		node = NewNode()
		for _, attr := range attrs {
			node.Set(attr.Name.Local, ParseValue(attr.Value))
		}
	}

	var text strings.Builder
	seenChild := false

	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, "", unexpectedEOF(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, name, err := decodeElement(dec, t)
			if err != nil {
				return Value{}, "", err
			}
			if node == nil {
				node = NewNode()
			}
			node.Set(name, child)
			seenChild = true
		case xml.CharData:
			// only the text leading up to the first child belongs to the
			// element itself
			if !seenChild {
				text.Write(t)
			}
		case xml.EndElement:
			raw := text.String()
			hasValue := strings.TrimSpace(raw) != ""

			if node != nil {
				if hasValue {
					node.Set(ValueField, StringValue(raw))
				}
				return NodeValue(node), start.Name.Local, nil
			}
			if hasValue {
				return ParseValue(raw), start.Name.Local, nil
			}
			return None(), start.Name.Local, nil
		}
	}
}

func decodeRowset(dec *xml.Decoder, start xml.StartElement) (Value, string, error) {
	name := rowsetTag
	for _, attr := range start.Attr {
		if attr.Name.Local == "name" {
			name = attr.Value
			break
		}
	}

	rows := []Value{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, "", unexpectedEOF(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			row, _, err := decodeElement(dec, t)
			if err != nil {
				return Value{}, "", err
			}
			rows = append(rows, row)
		case xml.EndElement:
			return RowsetValue(rows), name, nil
		}
	}
}

// attributes drops namespace declarations, which are not element attributes.
func attributes(start xml.StartElement) []xml.Attr {
	out := make([]xml.Attr, 0, len(start.Attr))
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("xmltree: %w", err)
}
