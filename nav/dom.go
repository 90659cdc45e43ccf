package nav

import (
	"strings"

	"golang.org/x/net/html"
)

// GetAttr returns the value of the named attribute, or "" when absent.
func GetAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present, regardless of value.
func HasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute on n.
func SetAttr(n *html.Node, name, val string) {
	for i := range n.Attr {
		if strings.EqualFold(n.Attr[i].Key, name) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
}

// RemoveAttr removes the named attribute from n if present.
func RemoveAttr(n *html.Node, name string) {
	for i := range n.Attr {
		if strings.EqualFold(n.Attr[i].Key, name) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func hasClass(n *html.Node, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return false
	}
	for _, c := range strings.Fields(GetAttr(n, "class")) {
		if c == want {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, cls string) {
	if hasClass(n, cls) {
		return
	}
	cur := strings.TrimSpace(GetAttr(n, "class"))
	if cur == "" {
		SetAttr(n, "class", cls)
		return
	}
	SetAttr(n, "class", cur+" "+cls)
}

func removeClass(n *html.Node, cls string) {
	cur := strings.Fields(GetAttr(n, "class"))
	if len(cur) == 0 {
		return
	}
	kept := cur[:0]
	for _, c := range cur {
		if c != cls {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, name) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := findElement(c, name); e != nil {
			return e
		}
	}
	return nil
}

func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}
