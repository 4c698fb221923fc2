// Package markuptest provides assertions on generated HTML.
package markuptest

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AssertDOMEqual asserts that the two HTML fragments have the same DOM, the order of attributes and
// the way attribute values are escaped are ignored.
func AssertDOMEqual(t *testing.T, expected, actual string) bool {
	t.Helper()

	normalizedExpected, err := normalizeFragment(expected)
	if !assert.NoError(t, err) {
		return false
	}

	normalizedActual, err := normalizeFragment(actual)
	if !assert.NoError(t, err) {
		return false
	}

	return assert.Equal(t, normalizedExpected, normalizedActual)
}

func normalizeFragment(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	b := &strings.Builder{}
	for _, node := range nodes {
		walkHTMLNode(node, func(n *html.Node) error {
			slices.SortFunc(n.Attr, func(a, b html.Attribute) int {
				return strings.Compare(a.Key, b.Key)
			})
			return nil
		}, 0)

		if err := html.Render(b, node); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// parseFragment parses htm as the content of a <div> element.
func parseFragment(htm string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	}

	return html.ParseFragment(strings.NewReader(htm), context)
}
