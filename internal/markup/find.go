package markup

import (
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	JS_SCRIPT_TYPES = []string{"", JS_SCRIPT_TYPE, "application/javascript", "module"}
)

// Script is an inline JavaScript script found in a page.
type Script struct {
	Index int //index among all <script> elements of the page
	Id    string
	Code  string
}

// FindScripts returns the inline JavaScript scripts of the HTML document read from r. Scripts with
// a src attribute and non-JavaScript scripts (JSON data, templates) are ignored.
func FindScripts(r io.Reader) ([]Script, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var scripts []Script

	doc.Find("script").Each(func(i int, s *goquery.Selection) {
		if _, hasSrc := s.Attr("src"); hasSrc {
			return
		}
		scriptType := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
		if !slices.Contains(JS_SCRIPT_TYPES, scriptType) {
			return
		}

		scripts = append(scripts, Script{
			Index: i,
			Id:    s.AttrOr("id", ""),
			Code:  s.Text(),
		})
	})

	return scripts, nil
}
