package jsgen

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

var (
	ErrInvalidJavascript = errors.New("invalid javascript")
)

// Check parses code as a JavaScript program and returns an error wrapping ErrInvalidJavascript if
// it contains a syntax error.
func Check(code string) error {
	_, err := js.Parse(parse.NewInputString(code), js.Options{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJavascript, err)
	}
	return nil
}
