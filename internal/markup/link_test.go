package markup

import (
	"testing"

	"github.com/inoxlang/protohelpers/internal/markup/markuptest"
	"github.com/stretchr/testify/assert"
)

func TestLinkToFunction(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		markuptest.AssertDOMEqual(t,
			`<a href="#" onclick="alert('Hello world!'); return false;">Greeting</a>`,
			LinkToFunction("Greeting", "alert('Hello world!')", LinkOptions{}),
		)
	})

	t.Run("existing onclick", func(t *testing.T) {
		markuptest.AssertDOMEqual(t,
			`<a href="#" onclick="confirm('Sanity!'); alert('Hello world!'); return false;">Greeting</a>`,
			LinkToFunction("Greeting", "alert('Hello world!')", LinkOptions{OnClick: "confirm('Sanity!')"}),
		)
	})

	t.Run("href", func(t *testing.T) {
		markuptest.AssertDOMEqual(t,
			`<a href="http://example.com/" onclick="alert('Hello world!'); return false;">Greeting</a>`,
			LinkToFunction("Greeting", "alert('Hello world!')", LinkOptions{Href: "http://example.com/"}),
		)
	})

	t.Run("class, id and other attributes", func(t *testing.T) {
		markuptest.AssertDOMEqual(t,
			`<a class="fine" id="greet" title="Say hello" href="#" onclick="greet(); return false;">Greeting</a>`,
			LinkToFunction("Greeting", "greet()", LinkOptions{
				Class:      "fine",
				Id:         "greet",
				Attributes: map[string]string{"title": "Say hello", "onclick": "ignored()"},
			}),
		)
	})

	t.Run("name is escaped", func(t *testing.T) {
		link := LinkToFunction("<b>Greeting</b>", "greet()", LinkOptions{})
		assert.Contains(t, link, "&lt;b&gt;Greeting&lt;/b&gt;")
	})

	t.Run("attribute order", func(t *testing.T) {
		assert.Equal(t,
			`<a class="fine" href="#" onclick="greet(); return false;">Greeting</a>`,
			LinkToFunction("Greeting", "greet()", LinkOptions{Class: "fine"}),
		)
	})
}
