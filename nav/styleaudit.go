package nav

import (
	"strings"

	"github.com/andybalholm/cascadia"
	cssast "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// StyleReport summarizes whether the page's own stylesheets give the
// selected class any styling. A page whose CSS never mentions the class is a
// strong sign the container or class options are misconfigured for that
// host.
type StyleReport struct {
	SelectedClass string
	// RuleCount is the total number of qualified rules parsed from inline
	// stylesheets.
	RuleCount int
	// Styled is true when at least one selector targets the selected class.
	Styled bool
	// Selectors lists the selectors that target it, in sheet order.
	Selectors []string
}

// AuditStyles parses every inline <style> sheet in doc and reports on the
// selected class. External stylesheets are not fetched; this is a local
// diagnostic, not a cascade engine.
func AuditStyles(doc *Document, opts Options) StyleReport {
	opts = opts.WithDefaults()
	report := StyleReport{SelectedClass: opts.SelectedClass}

	var sheets []string
	walkElements(doc.Root(), func(n *html.Node) {
		if !strings.EqualFold(n.Data, "style") {
			return
		}
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			sheets = append(sheets, n.FirstChild.Data)
		}
	})

	classToken := "." + opts.SelectedClass
	for _, txt := range sheets {
		trimmed := strings.TrimSpace(txt)
		if trimmed == "" {
			continue
		}
		sheet, err := parser.Parse(trimmed)
		if err != nil {
			continue
		}
		var walk func([]*cssast.Rule)
		walk = func(list []*cssast.Rule) {
			for _, rule := range list {
				if rule == nil {
					continue
				}
				if rule.Kind == cssast.AtRule {
					if rule.EmbedsRules() {
						walk(rule.Rules)
					}
					continue
				}
				report.RuleCount++
				for _, sel := range rule.Selectors {
					if !selectorTargetsClass(sel, classToken) {
						continue
					}
					if _, err := cascadia.ParseGroup(sel); err != nil {
						continue
					}
					report.Styled = true
					report.Selectors = append(report.Selectors, sel)
				}
			}
		}
		walk(sheet.Rules)
	}
	return report
}

// selectorTargetsClass reports whether the class token appears in sel as a
// full class name, not a prefix of a longer one.
func selectorTargetsClass(sel, classToken string) bool {
	idx := 0
	for {
		i := strings.Index(sel[idx:], classToken)
		if i < 0 {
			return false
		}
		end := idx + i + len(classToken)
		if end == len(sel) || !isClassNameByte(sel[end]) {
			return true
		}
		idx = end
	}
}

func isClassNameByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
