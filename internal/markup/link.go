package markup

import (
	"github.com/inoxlang/protohelpers/internal/utils"
	"golang.org/x/net/html"
)

const (
	DEFAULT_LINK_HREF = "#"
)

type LinkOptions struct {
	Href string `yaml:"href,omitempty"`

	//Code executed before the function, the two are separated by a semicolon.
	OnClick string `yaml:"onclick,omitempty"`

	Class      string            `yaml:"class,omitempty"`
	Id         string            `yaml:"id,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// LinkToFunction returns an anchor element calling function when clicked, the default action of the
// click is prevented. Example:
//
//	<a href="#" onclick="alert('Hello world!'); return false;">Greeting</a>
func LinkToFunction(name string, function string, opts LinkOptions) string {
	onclick := function + "; return false;"
	if opts.OnClick != "" {
		onclick = opts.OnClick + "; " + onclick
	}

	href := opts.Href
	if href == "" {
		href = DEFAULT_LINK_HREF
	}

	var attributes []html.Attribute
	for _, key := range utils.SortedKeys(opts.Attributes) {
		switch key {
		case "href", "onclick", CLASS_KEY, ID_KEY:
			//set by dedicated options
			continue
		}
		attributes = append(attributes, html.Attribute{Key: key, Val: opts.Attributes[key]})
	}

	attributes = append(attributes,
		html.Attribute{Key: "href", Val: href},
		html.Attribute{Key: "onclick", Val: onclick},
	)

	anchor := NewNodeFromGoDescription(NodeDescription{
		Tag:        "a",
		Class:      opts.Class,
		Id:         opts.Id,
		Attributes: attributes,
		Children:   []*html.Node{CreateTextNode(name)},
	})

	return RenderToString(anchor)
}
