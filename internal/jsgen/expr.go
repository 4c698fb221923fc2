package jsgen

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

const (
	JS_POSITIVE_INFINITY = "Infinity"
	JS_NAN               = "NaN"
)

// An Expr is a node of a JavaScript expression, rendering is deterministic: the same tree always
// produces the same text.
type Expr interface {
	writeTo(b *strings.Builder)
}

// Render returns the source text of expr.
func Render(expr Expr) string {
	b := &strings.Builder{}
	expr.writeTo(b)
	return b.String()
}

// Raw is JavaScript code that is emitted verbatim.
type Raw string

func (r Raw) writeTo(b *strings.Builder) {
	b.WriteString(string(r))
}

// Number is a numeric literal rendered in its shortest decimal form (300, 0.25, -1).
type Number float64

func (n Number) writeTo(b *strings.Builder) {
	b.WriteString(FormatNumber(float64(n)))
}

// FormatNumber returns the JavaScript literal of f, infinities are rendered as Infinity and -Infinity.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return JS_POSITIVE_INFINITY
	case math.IsInf(f, -1):
		return "-" + JS_POSITIVE_INFINITY
	case math.IsNaN(f):
		return JS_NAN
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Quoted is a single-quoted string literal, the content is escaped with EscapeJavascript.
type Quoted string

func (q Quoted) writeTo(b *strings.Builder) {
	b.WriteByte('\'')
	b.WriteString(EscapeJavascript(string(q)))
	b.WriteByte('\'')
}

// New is a constructor call: new <Constructor>(<arg>, <arg>, ...).
type New struct {
	Constructor string
	Args        []Expr
}

func (n New) writeTo(b *strings.Builder) {
	b.WriteString("new ")
	b.WriteString(n.Constructor)
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.writeTo(b)
	}
	b.WriteByte(')')
}

// Func is an anonymous function expression: function(<params>) {<body>}.
type Func struct {
	Params []string
	Body   Expr
}

func (f Func) writeTo(b *strings.Builder) {
	b.WriteString("function(")
	b.WriteString(strings.Join(f.Params, ", "))
	b.WriteString(") {")
	if f.Body != nil {
		f.Body.writeTo(b)
	}
	b.WriteByte('}')
}

// CompactFunc is like Func but without the space between the parameter list and the body:
// function(request){<body>}. Ajax callbacks are rendered this way.
type CompactFunc struct {
	Params []string
	Body   Expr
}

func (f CompactFunc) writeTo(b *strings.Builder) {
	b.WriteString("function(")
	b.WriteString(strings.Join(f.Params, ", "))
	b.WriteString("){")
	if f.Body != nil {
		f.Body.writeTo(b)
	}
	b.WriteByte('}')
}

type Property struct {
	Key   string
	Value Expr
}

// Object is an object literal whose entries are rendered as key:value, sorted by their rendered
// text and separated by ", ". An empty object is rendered as {}.
type Object []Property

func (o Object) writeTo(b *strings.Builder) {
	if len(o) == 0 {
		b.WriteString("{}")
		return
	}

	entries := make([]string, 0, len(o))
	for _, prop := range o {
		entries = append(entries, prop.Key+":"+Render(prop.Value))
	}
	slices.Sort(entries)

	b.WriteByte('{')
	b.WriteString(strings.Join(entries, ", "))
	b.WriteByte('}')
}

// PackedObject is an object literal rendered in declaration order without spaces: {a:1,b:2}.
type PackedObject []Property

func (o PackedObject) writeTo(b *strings.Builder) {
	b.WriteByte('{')
	for i, prop := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(prop.Key)
		b.WriteByte(':')
		prop.Value.writeTo(b)
	}
	b.WriteByte('}')
}

// Bool is a boolean literal.
type Bool bool

func (v Bool) writeTo(b *strings.Builder) {
	if v {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
}
