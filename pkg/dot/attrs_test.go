package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAList(t *testing.T) {
	tests := []struct {
		name       string
		label      Value
		kwargs     Map
		attributes Attributes
		expected   string
	}{
		{
			name:     "empty",
			expected: "",
		},
		{
			name:  "label with unset and empty kwargs",
			label: String("spam"),
			kwargs: Map{
				"spam": None,
				"ham":  String("ham ham"),
				"eggs": String(""),
			},
			expected: `label=spam eggs="" ham="ham ham"`,
		},
		{
			name:     "empty label is kept",
			label:    String(""),
			expected: `label=""`,
		},
		{
			name:     "keyword values are quoted",
			kwargs:   Map{"shape": String("node"), "label": String("graph")},
			expected: `label="graph" shape="node"`,
		},
		{
			name:  "ordered attributes keep their order",
			label: String("x"),
			attributes: List{
				{Key: "z", Value: String("1")},
				{Key: "a", Value: None},
				{Key: "m", Value: String("two words")},
				{Key: "a", Value: String("again")},
			},
			expected: `label=x z=1 m="two words" a=again`,
		},
		{
			name:       "map attributes are sorted",
			attributes: Map{"b": Int(2), "a": Float(0.5), "c": String("<<i>c</i>>")},
			expected:   `a=0.5 b=2 c=<<i>c</i>>`,
		},
		{
			name:       "kwargs before attributes",
			kwargs:     Map{"z": String("kw")},
			attributes: List{{Key: "a", Value: String("attr")}},
			expected:   `z=kw a=attr`,
		},
		{
			name:       "keys are quoted too",
			attributes: List{{Key: "odd key", Value: String(`say "hi"`)}},
			expected:   `"odd key"="say \"hi\""`,
		},
		{
			name:       "all unset",
			kwargs:     Map{"a": None},
			attributes: Map{"b": None},
			expected:   "",
		},
		{
			name:       "nil list",
			attributes: List(nil),
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AList(tt.label, tt.kwargs, tt.attributes))
		})
	}
}

func TestAttrList(t *testing.T) {
	assert.Equal(t, "", AttrList(None, nil, nil))
	assert.Equal(t, ` [label="spam spam" eggs=eggs ham="ham ham"]`,
		AttrList(String("spam spam"), Map{"eggs": String("eggs"), "ham": String("ham ham")}, nil))
	assert.Equal(t, ` [eggs=""]`,
		AttrList(None, Map{"spam": None, "eggs": String("")}, nil))
	assert.Equal(t, "", AttrList(None, Map{"spam": None}, List{{Key: "eggs", Value: None}}))
}

func TestAListDeterministic(t *testing.T) {
	kwargs := Map{}
	for _, k := range []string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "a", "s", "d", "f"} {
		kwargs[k] = String(k + " " + k)
	}

	first := AList(String("l"), kwargs, kwargs)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, AList(String("l"), kwargs, kwargs))
	}
	assert.Contains(t, first, `a="a a" d="d d" e="e e"`)
}

func TestValueOf(t *testing.T) {
	var nilString *string
	s := "spam"

	assert.False(t, ValueOf(nil).IsSet())
	assert.False(t, ValueOf(nilString).IsSet())
	assert.False(t, ValueOf(None).IsSet())
	assert.Equal(t, String("spam"), ValueOf(&s))
	assert.Equal(t, String("spam"), ValueOf("spam"))
	assert.Equal(t, String("42"), ValueOf(42))
	assert.Equal(t, String("-4.2"), ValueOf(-4.2))

	v := ValueOf("")
	assert.True(t, v.IsSet())
	assert.Equal(t, "", v.Text())
	assert.Equal(t, None, Value{})
}

func TestMapPairsSorted(t *testing.T) {
	pairs := Map{"b": String("2"), "B": String("1"), "a": None, "_": String("0")}.Pairs()
	require.Len(t, pairs, 4)

	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{"B", "_", "a", "b"}, keys)
}
