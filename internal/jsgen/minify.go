package jsgen

import (
	"github.com/tdewolff/minify/v2"
	jsminify "github.com/tdewolff/minify/v2/js"
)

const (
	JS_MIME_TYPE = "application/javascript"
)

var (
	minifier = newMinifier()
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(JS_MIME_TYPE, jsminify.Minify)
	return m
}

// Minify returns a compacted version of code, local variables may be renamed.
func Minify(code string) (string, error) {
	return minifier.String(JS_MIME_TYPE, code)
}
