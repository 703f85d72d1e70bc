package htmlutil

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText returns the text content of a node and all its descendants.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// Text returns the trimmed text content of the first node in sel, ok is false
// if sel is empty.
func Text(sel *goquery.Selection) (text string, ok bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(GetText(sel.Nodes[0])), true
}

// TextOr is Text, returning fallback if sel is empty.
func TextOr(sel *goquery.Selection, fallback string) string {
	text, ok := Text(sel)
	if !ok {
		return fallback
	}
	return text
}

// Attr returns the value of the attribute on the first node in sel, ok is false
// if sel is empty or the attribute is not present.
func Attr(sel *goquery.Selection, name string) (value string, ok bool) {
	if sel.Length() == 0 {
		return "", false
	}
	for _, a := range sel.Nodes[0].Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// FindByAttr returns the first element matching selector under sel whose attribute
// `name` is exactly equal to value. value is compared as-is, so it does not need
// any css escaping.
func FindByAttr(sel *goquery.Selection, selector, name, value string) *goquery.Selection {
	return sel.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		attr, ok := Attr(s, name)
		return ok && attr == value
	}).First()
}

// AbsoluteUrl prefixes root-relative references ("/img/...") with origin as-is,
// without escaping or cleaning the path. References that already carry a scheme
// are returned unchanged, anything else is resolved against origin.
func AbsoluteUrl(origin *url.URL, ref string) string {
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return strings.TrimRight(origin.String(), "/") + ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return strings.TrimRight(origin.String(), "/") + ref
	}
	if parsed.IsAbs() {
		return ref
	}
	return origin.ResolveReference(parsed).String()
}
