package jsgen

import "strings"

var javascriptEscaper = strings.NewReplacer(
	`\`, `\\`,
	`</`, `<\/`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
	`"`, `\"`,
	`'`, `\'`,
)

// EscapeJavascript escapes carriage returns, line feeds, quotes, backslashes and closing tags so that
// s can be embedded in a single or double quoted JavaScript string.
func EscapeJavascript(s string) string {
	return javascriptEscaper.Replace(s)
}
