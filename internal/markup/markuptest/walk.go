package markuptest

import (
	"errors"

	"golang.org/x/net/html"
)

var (
	errStopWalk = errors.New("stop walk")
)

// walkHTMLNode calls fn on node and its descendants in depth-first order, returning errStopWalk from
// fn stops the walk without error.
func walkHTMLNode(node *html.Node, fn func(n *html.Node) error, depth int) error {
	if err := fn(node); err != nil {
		if errors.Is(err, errStopWalk) && depth == 0 {
			return nil
		}
		return err
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := walkHTMLNode(child, fn, depth+1); err != nil {
			if errors.Is(err, errStopWalk) && depth == 0 {
				return nil
			}
			return err
		}
	}
	return nil
}
