package markup

import (
	"bytes"
	"fmt"

	"github.com/inoxlang/protohelpers/internal/utils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	CLASS_KEY = "class"
	ID_KEY    = "id"
)

type NodeDescription struct {
	Tag        string
	Children   []*html.Node
	Class      string
	Id         string
	Attributes []html.Attribute
}

func NewNodeFromGoDescription(desc NodeDescription) *html.Node {
	dataAtom := atom.Lookup(utils.StringAsBytes(desc.Tag))

	if dataAtom == 0 {
		panic(fmt.Errorf("provided tag '%s' is invalid", desc.Tag))
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: dataAtom,
		//Do not keep a reference to the tag string.
		Data: dataAtom.String(),
	}

	// Set parent & siblings of all children.
	for i, child := range desc.Children {
		child.Parent = node
		if i != len(desc.Children)-1 {
			nextSibling := desc.Children[i+1]
			nextSibling.PrevSibling = child
			child.NextSibling = nextSibling
		}
	}

	if desc.Class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: CLASS_KEY, Val: desc.Class})
	}

	if desc.Id != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: ID_KEY, Val: desc.Id})
	}

	node.Attr = append(node.Attr, desc.Attributes...)

	if len(desc.Children) > 0 {
		node.FirstChild = desc.Children[0]
		node.LastChild = desc.Children[len(desc.Children)-1]
	}

	return node
}

func CreateTextNode(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}

// RenderToString renders node. The text of raw text elements such as <script> is written as is,
// attribute values and other texts are escaped.
func RenderToString(node *html.Node) string {
	buf := bytes.NewBuffer(nil)

	//Rendering to a buffer only fails for malformed trees.
	if err := html.Render(buf, node); err != nil {
		panic(err)
	}
	return buf.String()
}
