package jsgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {

	t.Run("constructor call with callback", func(t *testing.T) {
		expr := New{
			Constructor: "Form.Element.Observer",
			Args: []Expr{
				Quoted("glass"),
				Number(300),
				Func{Params: []string{"element", "value"}, Body: Raw("alert('Element changed')")},
			},
		}

		assert.Equal(t,
			"new Form.Element.Observer('glass', 300, function(element, value) {alert('Element changed')})",
			Render(expr),
		)
	})

	t.Run("function with empty body", func(t *testing.T) {
		assert.Equal(t, "function() {}", Render(Func{}))
	})

	t.Run("compact function", func(t *testing.T) {
		expr := CompactFunc{Params: []string{"request"}, Body: Raw("alert(request.responseText)")}
		assert.Equal(t, "function(request){alert(request.responseText)}", Render(expr))
	})

	t.Run("quoted string is escaped", func(t *testing.T) {
		assert.Equal(t, `'it\'s'`, Render(Quoted("it's")))
	})

	t.Run("object entries are sorted", func(t *testing.T) {
		expr := Object{
			{Key: "parameters", Value: Raw("value")},
			{Key: "asynchronous", Value: Bool(true)},
			{Key: "evalScripts", Value: Bool(false)},
		}
		assert.Equal(t, "{asynchronous:true, evalScripts:false, parameters:value}", Render(expr))
	})

	t.Run("empty object", func(t *testing.T) {
		assert.Equal(t, "{}", Render(Object{}))
	})

	t.Run("packed object keeps declaration order", func(t *testing.T) {
		expr := PackedObject{
			{Key: "success", Value: Quoted("invoice")},
			{Key: "failure", Value: Quoted("error")},
		}
		assert.Equal(t, "{success:'invoice',failure:'error'}", Render(expr))
	})
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:    "0",
		2:    "2",
		300:  "300",
		0.25: "0.25",
		-1:   "-1",
		1.5:  "1.5",
	}

	for n, expected := range cases {
		assert.Equal(t, expected, FormatNumber(n))
	}

	t.Run("non finite numbers", func(t *testing.T) {
		assert.Equal(t, "Infinity", FormatNumber(math.Inf(1)))
		assert.Equal(t, "-Infinity", FormatNumber(math.Inf(-1)))
		assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	})
}
