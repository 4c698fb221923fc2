package jsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeJavascript(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"abc", "abc"},
		{"whatnot's", `whatnot\'s`},
		{`say "hi"`, `say \"hi\"`},
		{`a\b`, `a\\b`},
		{"</script>", `<\/script>`},
		{"a\r\nb\nc\rd", `a\nb\nc\nd`},
	}

	for _, testCase := range cases {
		t.Run(testCase[0], func(t *testing.T) {
			assert.Equal(t, testCase[1], EscapeJavascript(testCase[0]))
		})
	}
}
