package markuptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFragment(t *testing.T) {

	t.Run("attributes are sorted", func(t *testing.T) {
		normalized, err := normalizeFragment(`<a onclick="f()" href="#">link</a>`)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, `<a href="#" onclick="f()">link</a>`, normalized)
	})

	t.Run("escaping of attribute values is ignored", func(t *testing.T) {
		quoted, err := normalizeFragment(`<a onclick="f('a')">link</a>`)
		if !assert.NoError(t, err) {
			return
		}

		escaped, err := normalizeFragment(`<a onclick="f(&#39;a&#39;)">link</a>`)
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, quoted, escaped)
	})

	t.Run("several top-level nodes", func(t *testing.T) {
		normalized, err := normalizeFragment(`<span b="2" a="1"></span><script>f()</script>`)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, `<span a="1" b="2"></span><script>f()</script>`, normalized)
	})
}
