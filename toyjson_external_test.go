package toyjson_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/toyjson"
)

func TestParse(t *testing.T) {
	tests := []struct {
		have string
		want toyjson.Value
	}{{
		"null", toyjson.NullValue(),
	}, {
		"true", toyjson.BoolValue(true),
	}, {
		" false ", toyjson.BoolValue(false),
	}, {
		"[1,2,3]",
		toyjson.ArrayValue(toyjson.IntValue(1), toyjson.IntValue(2), toyjson.IntValue(3)),
	}, {
		`{"a":1,"b":[true,false,null]}`,
		toyjson.ObjectValue(
			toyjson.Member{Key: "a", Value: toyjson.IntValue(1)},
			toyjson.Member{Key: "b", Value: toyjson.ArrayValue(
				toyjson.BoolValue(true), toyjson.BoolValue(false), toyjson.NullValue(),
			)},
		),
	}, {
		`"hello\nworld"`, toyjson.StringValue("hello\nworld"),
	}, {
		`"\u00e9"`, toyjson.StringValue("é"),
	}, {
		`"\t"`, toyjson.StringValue("\t"),
	}, {
		`"a\/b"`, toyjson.StringValue("a/b"),
	}, {
		"0", toyjson.IntValue(0),
	}, {
		"-12", toyjson.IntValue(-12),
	}, {
		"3.14", toyjson.FloatValue(3.14),
	}, {
		"1e3", toyjson.FloatValue(1000),
	}, {
		"10", toyjson.IntValue(10),
	}, {
		"[]", toyjson.ArrayValue(),
	}, {
		"{}", toyjson.ObjectValue(),
	}, {
		`{"a":{},"b":[],"c":null,"d":0,"e":""}`,
		toyjson.ObjectValue(
			toyjson.Member{Key: "a", Value: toyjson.ObjectValue()},
			toyjson.Member{Key: "b", Value: toyjson.ArrayValue()},
			toyjson.Member{Key: "c", Value: toyjson.NullValue()},
			toyjson.Member{Key: "d", Value: toyjson.IntValue(0)},
			toyjson.Member{Key: "e", Value: toyjson.StringValue("")},
		),
	}, {
		`[[[]],[{"x":[-1.5]}]]`,
		toyjson.ArrayValue(
			toyjson.ArrayValue(toyjson.ArrayValue()),
			toyjson.ArrayValue(toyjson.ObjectValue(
				toyjson.Member{Key: "x", Value: toyjson.ArrayValue(toyjson.FloatValue(-1.5))},
			)),
		),
	}}
	for _, test := range tests {
		have, err := toyjson.Parse(test.have)
		if err != nil {
			t.Errorf("%s: %v", test.have, err)
			continue
		}
		if !toyjson.Equal(have, test.want) {
			t.Errorf("%s: got %v, want %v", test.have, have.Interface(), test.want.Interface())
		}
	}
}

func TestNumberTyping(t *testing.T) {
	tests := []struct {
		have  string
		isInt bool
	}{
		{"0", true}, {"-12", true}, {"10", true},
		{"3.14", false}, {"1e3", false}, {"1.0", false},
	}
	for _, test := range tests {
		v, err := toyjson.Parse(test.have)
		require.NoError(t, err)
		require.Equal(t, toyjson.NumberType, v.Type())
		assert.Equal(t, test.isInt, v.Number().IsInt(), test.have)
	}
}

func TestEqualDistinguishesNumberShape(t *testing.T) {
	assert.False(t, toyjson.Equal(toyjson.IntValue(1), toyjson.FloatValue(1)))
	assert.True(t, toyjson.Equal(
		toyjson.ObjectValue(
			toyjson.Member{Key: "a", Value: toyjson.IntValue(1)},
			toyjson.Member{Key: "b", Value: toyjson.NullValue()},
		),
		toyjson.ObjectValue(
			toyjson.Member{Key: "b", Value: toyjson.NullValue()},
			toyjson.Member{Key: "a", Value: toyjson.IntValue(1)},
		),
	))
}

func TestDuplicateKeys(t *testing.T) {
	v, err := toyjson.Parse(`{"a":1,"b":true,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Keys())
	a, ok := v.Get("a")
	require.True(t, ok)
	assert.True(t, toyjson.Equal(toyjson.IntValue(2), a))
	assert.Equal(t, 2, v.Len())
}

func TestRejectionSet(t *testing.T) {
	tests := []struct {
		have    string
		lexical bool
	}{
		{"01", true},
		{"-", true},
		{"1.", true},
		{"1e", true},
		{"[1,]", false},
		{`{"a":1,}`, false},
		{`{"a":1`, false},
		{"[1,2", false},
		{"tru", true},
		{`"unterminated`, true},
		{`"\uZZZZ"`, true},
		{"[1] x", true},
		{"[1] 2", false},
		{"", false},
	}
	for _, test := range tests {
		_, err := toyjson.Parse(test.have)
		require.Error(t, err, test.have)
		var lexErr *toyjson.LexicalError
		var synErr *toyjson.SyntaxError
		if test.lexical {
			assert.True(t, errors.As(err, &lexErr), "%q: want lexical error, got %v", test.have, err)
		} else {
			assert.True(t, errors.As(err, &synErr), "%q: want syntax error, got %v", test.have, err)
		}
		assert.False(t, toyjson.Valid(test.have))
	}
}

// normalize maps integer Numbers to float64 the way encoding/json decodes
// them into interface{}.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case []interface{}:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	case map[string]interface{}:
		for k := range v {
			v[k] = normalize(v[k])
		}
		return v
	default:
		return v
	}
}

func TestMatchesEncodingJSON(t *testing.T) {
	glossary, err := os.ReadFile("testdata/glossary.json")
	require.NoError(t, err)
	webapp, err := os.ReadFile("testdata/webapp.json")
	require.NoError(t, err)

	docs := []string{
		string(glossary),
		string(webapp),
		`[0,-0,1e3,-1.5E-2,0.5,123456789012,12345678901234567890,-9223372036854775808]`,
		`{"s":"\u00e9\t\"\\\/\b\f\n\r","u":"日本語","e":""}`,
		`{"a":1,"a":{"b":2},"c":[{},[],null]}`,
		`"top"`,
		`-7`,
		`null`,
	}
	for _, doc := range docs {
		var want interface{}
		require.NoError(t, json.Unmarshal([]byte(doc), &want))
		have, err := toyjson.Parse(doc)
		require.NoError(t, err)
		if diff := cmp.Diff(want, normalize(have.Interface())); diff != "" {
			t.Errorf("mismatch (-encoding/json +toyjson) for %s:\n%s", doc, diff)
		}
	}
}

func TestWhitespaceInsensitive(t *testing.T) {
	pieces := []string{
		"{", `"a"`, ":", "[", "1", ",", "2.5", ",", `"x y"`, "]", ",",
		`"b"`, ":", "{", `"c"`, ":", "null", "}", "}",
	}
	want, err := toyjson.Parse(strings.Join(pieces, ""))
	require.NoError(t, err)
	for _, ws := range []string{" ", "\t", "\n", "\r\n", " \t\r\n  "} {
		doc := ws + strings.Join(pieces, ws) + ws
		have, err := toyjson.Parse(doc)
		require.NoError(t, err, "%q", doc)
		assert.True(t, toyjson.Equal(want, have), "%q", doc)
	}
}

func TestRepeatedParse(t *testing.T) {
	const doc = `{"k":[1,{"n":"v"}]}`
	first, err := toyjson.Parse(doc)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := toyjson.Parse("[1,")
		require.Error(t, err)
		v, err := toyjson.Parse(doc)
		require.NoError(t, err)
		assert.True(t, toyjson.Equal(first, v))
	}
}

func TestMaxDepth(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("[", n) + strings.Repeat("]", n)
	}

	_, err := toyjson.Config{MaxDepth: 3}.Parse(nest(3))
	assert.NoError(t, err)

	_, err = toyjson.Config{MaxDepth: 3}.Parse(`[{"a":[{}]}]`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, toyjson.ErrMaxDepth))
	var synErr *toyjson.SyntaxError
	require.True(t, errors.As(err, &synErr))
	line, col := synErr.Where()
	assert.Equal(t, [2]int{1, 8}, [2]int{line, col})

	_, err = toyjson.Parse(nest(toyjson.DefaultMaxDepth))
	assert.NoError(t, err)
	_, err = toyjson.Parse(nest(toyjson.DefaultMaxDepth + 1))
	assert.True(t, errors.Is(err, toyjson.ErrMaxDepth))

	_, err = toyjson.Config{MaxDepth: -1}.Parse(nest(toyjson.DefaultMaxDepth + 1))
	assert.NoError(t, err)
}

func TestParseReader(t *testing.T) {
	v, err := toyjson.ParseReader(strings.NewReader(`{"a": [1]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Total())

	boom := errors.New("boom")
	_, err = toyjson.ParseReader(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))
	assert.Contains(t, err.Error(), "read json")
}

func TestFile(t *testing.T) {
	f, err := os.Open("testdata/webapp.json")
	require.NoError(t, err)
	defer f.Close()
	n, err := toyjson.ParseReader(f)
	require.NoError(t, err)

	assert.Equal(t, 29, n.Total())

	m, err := n.Lookup("web-app.servlet.1.init-param.mailHost")
	require.NoError(t, err)
	assert.Equal(t, toyjson.StringType, m.Type())
	assert.Equal(t, "mail1", m.Str())

	m, err = n.Lookup("web-app.servlet.2.init-param")
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []string{
		"logLocation", "log", "dataLogMaxSize", "lookInContext", "adminGroupID", "betaServer",
	}, m.Keys())

	_, err = n.Lookup("web-app.servlet.3")
	assert.Equal(t, toyjson.ErrNoChild, errors.Cause(err))
	_, err = n.Lookup("web-app.taglib.taglib-uri.x")
	assert.Equal(t, toyjson.ErrNotArrayOrObject, errors.Cause(err))

	root, err := n.Lookup("")
	require.NoError(t, err)
	assert.True(t, toyjson.Equal(n, root))
}

func TestWalk(t *testing.T) {
	v, err := toyjson.Parse(`{"a":[1,{"b":null}],"c":{},"d":"x"}`)
	require.NoError(t, err)
	var paths []string
	err = v.Walk(func(path string, leaf toyjson.Value) error {
		paths = append(paths, path+"="+leaf.Type().String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.0=number", "a.1.b=null", "c=object", "d=string"}, paths)

	stop := errors.New("stop")
	calls := 0
	err = v.Walk(func(string, toyjson.Value) error {
		calls++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, calls)
}
