package xmltree

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const xmlHeader = `<?xml version="1.0"?>`

func mustDecode(t testing.TB, doc string) Value {
	t.Helper()
	v, err := DecodeString(doc)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func requireInt(t testing.TB, v Value, path []string, expected int64) {
	t.Helper()
	field, ok := v.Get(path...)
	require.True(t, ok, "missing field %v", path)
	i, ok := field.Int()
	require.True(t, ok, "field %v is %s, not int", path, field.Kind())
	require.Equal(t, expected, i)
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		token    string
		expected Value
	}{
		{token: "1", expected: IntValue(1)},
		{token: "-7", expected: IntValue(-7)},
		{token: "+3", expected: IntValue(3)},
		{token: "007", expected: IntValue(7)},
		{token: " 42\n", expected: IntValue(42)},
		{token: "abc", expected: StringValue("abc")},
		{token: "1.5", expected: StringValue("1.5")},
		{token: "1e3", expected: StringValue("1e3")},
		{token: "", expected: StringValue("")},
		{token: " x ", expected: StringValue(" x ")},
		{token: "0x10", expected: StringValue("0x10")},
		{token: "2011-01-01 12:00:00", expected: StringValue("2011-01-01 12:00:00")},
		{token: "99999999999999999999", expected: StringValue("99999999999999999999")},
	}

	for _, test := range testCases {
		diff := cmp.Diff(test.expected, ParseValue(test.token), cmp.AllowUnexported(Value{}, Node{}))
		if diff != "" {
			t.Errorf("ParseValue(%q) mismatch (-want +got):\n%s", test.token, diff)
		}
	}
}

func TestDecodeValues(t *testing.T) {
	result := mustDecode(t, xmlHeader+`<a><b>1</b><c>2</c></a>`)

	requireInt(t, result, []string{"b"}, 1)
	requireInt(t, result, []string{"c"}, 2)
}

func TestDecodeAttributes(t *testing.T) {
	result := mustDecode(t, xmlHeader+`<a><b x="1"></b><c x="2"></c></a>`)

	requireInt(t, result, []string{"b", "x"}, 1)
	requireInt(t, result, []string{"c", "x"}, 2)
}

func TestDecodeAttributesAndValues(t *testing.T) {
	result := mustDecode(t, xmlHeader+`<a><b x="1">abc</b><c x="2">def</c></a>`)

	requireInt(t, result, []string{"b", "x"}, 1)
	requireInt(t, result, []string{"c", "x"}, 2)

	b, ok := result.Get("b")
	require.True(t, ok)
	node, ok := b.Node()
	require.True(t, ok)
	text, ok := node.Text()
	require.True(t, ok)
	require.Equal(t, "abc", text)

	c, _ := result.Get("c", ValueField)
	s, ok := c.Str()
	require.True(t, ok)
	require.Equal(t, "def", s)
}

func TestDecodeKeepsValueTextUncoerced(t *testing.T) {
	result := mustDecode(t, `<a><b x="1">  12 </b></a>`)

	v, ok := result.Get("b", ValueField)
	require.True(t, ok)
	s, ok := v.Str()
	require.True(t, ok)
	require.Equal(t, "  12 ", s)
}

func TestDecodeNoValue(t *testing.T) {
	result := mustDecode(t, xmlHeader+`<a><b>1</b><c></c><d/><e>   </e></a>`)

	requireInt(t, result, []string{"b"}, 1)
	for _, name := range []string{"c", "d", "e"} {
		v, ok := result.Get(name)
		require.True(t, ok, "field %s should be present", name)
		require.True(t, v.IsNone(), "field %s should be the no-value marker", name)
	}

	_, ok := result.Get("missing")
	require.False(t, ok)
}

func TestDecodeRowsets(t *testing.T) {
	result := mustDecode(t, xmlHeader+`<a><rowset name="test" key="x" columns="x"><row x="1"/><row x="2"/></rowset></a>`)

	test, ok := result.Get("test")
	require.True(t, ok)
	require.Equal(t, KindRowset, test.Kind())
	require.Equal(t, 2, test.Len())

	first, ok := test.Index(0)
	require.True(t, ok)
	requireInt(t, first, []string{"x"}, 1)
	second, ok := test.Index(1)
	require.True(t, ok)
	requireInt(t, second, []string{"x"}, 2)

	_, ok = test.Index(2)
	require.False(t, ok)

	_, ok = result.Get("rowset")
	require.False(t, ok, "a named rowset must not be installed under its tag")
}

func TestDecodeRowsetEdgeCases(t *testing.T) {
	result := mustDecode(t, `<a>
		<rowset name="empty" />
		<rowset><row x="1"/></rowset>
		<rowset name="mixed"><row>5</row><row/><row><rowset name="inner"><row y="3"/></rowset></row></rowset>
	</a>`)

	empty, ok := result.Get("empty")
	require.True(t, ok)
	rows, ok := empty.Rows()
	require.True(t, ok)
	require.Len(t, rows, 0)

	unnamed, ok := result.Get("rowset")
	require.True(t, ok)
	require.Equal(t, 1, unnamed.Len())

	mixed, _ := result.Get("mixed")
	rows, ok = mixed.Rows()
	require.True(t, ok)
	require.Len(t, rows, 3)
	i, ok := rows[0].Int()
	require.True(t, ok)
	require.Equal(t, int64(5), i)
	require.True(t, rows[1].IsNone())

	inner, ok := rows[2].Get("inner")
	require.True(t, ok)
	row, ok := inner.Index(0)
	require.True(t, ok)
	requireInt(t, row, []string{"y"}, 3)
}

func TestDecodeRootRowset(t *testing.T) {
	result := mustDecode(t, `<rowset name="r"><row a="1"/></rowset>`)
	require.Equal(t, KindRowset, result.Kind())
	require.Equal(t, 1, result.Len())
}

func TestDecodeScalarRoot(t *testing.T) {
	result := mustDecode(t, `<a> 17 </a>`)
	i, ok := result.Int()
	require.True(t, ok)
	require.Equal(t, int64(17), i)

	result = mustDecode(t, `<a/>`)
	require.True(t, result.IsNone())
}

func TestDecodeCollisionLastWriteWins(t *testing.T) {
	result := mustDecode(t, `<a x="1" y="attr"><x>2</x><z>a</z><z>b</z><rowset name="y"><row/></rowset></a>`)

	requireInt(t, result, []string{"x"}, 2)

	z, _ := result.Get("z")
	s, _ := z.Str()
	require.Equal(t, "b", s)

	y, _ := result.Get("y")
	require.Equal(t, KindRowset, y.Kind())

	node, _ := result.Node()
	require.Equal(t, []string{"x", "y", "z"}, node.Fields())
}

func TestDecodeTextAfterChildrenIsIgnored(t *testing.T) {
	result := mustDecode(t, `<a><b>1</b>trailing</a>`)
	_, ok := result.Get(ValueField)
	require.False(t, ok)

	result = mustDecode(t, `<a>lead<b>1</b>trailing</a>`)
	v, ok := result.Get(ValueField)
	require.True(t, ok)
	s, _ := v.Str()
	require.Equal(t, "lead", s)
}

func TestDecodeCDataAndEntities(t *testing.T) {
	result := mustDecode(t, `<a><b><![CDATA[<x> & y]]></b><c>1 &lt; 2</c><d><![CDATA[12]]></d></a>`)

	b, _ := result.Get("b")
	s, _ := b.Str()
	require.Equal(t, "<x> & y", s)

	c, _ := result.Get("c")
	s, _ = c.Str()
	require.Equal(t, "1 < 2", s)

	requireInt(t, result, []string{"d"}, 12)
}

func TestDecodeIgnoresNamespaceDeclarations(t *testing.T) {
	result := mustDecode(t, `<a xmlns="urn:x" xmlns:p="urn:p"><b p:id="4">x</b></a>`)

	node, ok := result.Node()
	require.True(t, ok)
	require.Equal(t, []string{"b"}, node.Fields())
	requireInt(t, result, []string{"b", "id"}, 4)
}

func TestDecodeMalformed(t *testing.T) {
	testCases := []string{
		``,
		`   `,
		`<a><b></a>`,
		`<a>`,
		`<a></a><b></b>`,
		`<a></a>junk`,
		`not xml at all`,
		`<a x="1></a>`,
	}

	for _, doc := range testCases {
		_, err := DecodeString(doc)
		require.Error(t, err, "document %q should fail to decode", doc)
	}

	_, err := DecodeString("")
	require.True(t, errors.Is(err, ErrNoRoot))

	_, err = DecodeString("<a><b>")
	require.Error(t, err)
	require.False(t, errors.Is(err, io.EOF))
}

func TestDecodeIsIdempotent(t *testing.T) {
	doc := `<eveapi version="2"><result><rowset name="characters" key="characterID"><row name="A" characterID="1"/><row name="B" characterID="2"/></rowset><info k="v">t</info></result></eveapi>`

	first := mustDecode(t, doc)
	second := mustDecode(t, doc)

	diff := cmp.Diff(first, second, cmp.AllowUnexported(Value{}, Node{}))
	require.Empty(t, diff)

	firstNode, _ := first.Node()
	firstNode.Set("extra", IntValue(1))
	_, ok := second.Get("extra")
	require.False(t, ok, "decoded trees must not share state")

	info, _ := first.Get("result", "info")
	infoNode, _ := info.Node()
	infoNode.Set("k", None())
	k, _ := second.Get("result", "info", "k")
	s, _ := k.Str()
	require.Equal(t, "v", s)
}

func TestMarshalJSON(t *testing.T) {
	result := mustDecode(t, `<a z="1"><b>x</b><c/><rowset name="r"><row v="2"/></rowset><d k="-3">txt</d></a>`)

	out, err := result.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"z":1,"b":"x","c":null,"r":[{"v":2}],"d":{"k":-3,"_value":"txt"}}`, string(out))
	require.Equal(t, `{"z":1,"b":"x","c":null,"r":[{"v":2}],"d":{"k":-3,"_value":"txt"}}`, result.String())
}
