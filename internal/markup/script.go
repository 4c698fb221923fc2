package markup

import (
	"golang.org/x/net/html"
)

const (
	JS_SCRIPT_TYPE = "text/javascript"
	CDATA_START    = "\n//<![CDATA[\n"
	CDATA_END      = "\n//]]>\n"
)

type ScriptOptions struct {
	//Content Security Policy nonce, no attribute is added if empty.
	Nonce string
}

// JavascriptTag wraps code in an inline script element whose content is a commented out CDATA
// section, this keeps the page valid XHTML:
//
//	<script type="text/javascript">
//	//<![CDATA[
//	code
//	//]]>
//	</script>
func JavascriptTag(code string, opts ScriptOptions) string {
	attributes := []html.Attribute{{Key: "type", Val: JS_SCRIPT_TYPE}}
	if opts.Nonce != "" {
		attributes = append(attributes, html.Attribute{Key: "nonce", Val: opts.Nonce})
	}

	script := NewNodeFromGoDescription(NodeDescription{
		Tag:        "script",
		Attributes: attributes,
		Children:   []*html.Node{CreateTextNode(CDATA_START + code + CDATA_END)},
	})

	return RenderToString(script)
}
