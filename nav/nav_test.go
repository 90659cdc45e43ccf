package nav

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const testPage = `<!DOCTYPE html>
<html><head>
<meta name="selected-link" value="repo_source">
</head><body>
<nav class="js-nav-container">
 <a class="js-selected-navigation-item" href="/code" data-selected-links="repo_source repo_commits">Code</a>
 <a class="js-selected-navigation-item" href="/issues" data-selected-links="repo_issues">Issues</a>
 <a class="js-selected-navigation-item" href="/pulls" data-selected-links="repo_pulls checks">Pull requests</a>
</nav>
<div class="unrelated">
 <a class="js-selected-navigation-item" data-selected-links="repo_source">Decoy</a>
</div>
</body></html>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func mustController(t *testing.T, doc *Document) *Controller {
	t.Helper()
	ctrl, err := NewController(doc, Options{})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

// itemStates maps each item's tag list to whether it is visually selected,
// failing the test if class and aria-current ever disagree.
func itemStates(t *testing.T, rec *Reconciler) map[string]bool {
	t.Helper()
	out := make(map[string]bool)
	for _, item := range rec.Items() {
		cls := hasClass(item, rec.opts.SelectedClass)
		aria := HasAttr(item, ariaCurrentAttr)
		if cls != aria {
			t.Fatalf("item %q: class=%v aria-current=%v, must agree",
				GetAttr(item, rec.opts.TagListAttr), cls, aria)
		}
		if aria && GetAttr(item, ariaCurrentAttr) != ariaCurrentValue {
			t.Fatalf("item %q: aria-current = %q, want %q",
				GetAttr(item, rec.opts.TagListAttr), GetAttr(item, ariaCurrentAttr), ariaCurrentValue)
		}
		out[GetAttr(item, rec.opts.TagListAttr)] = cls
	}
	return out
}

func findDecoy(t *testing.T, doc *Document) *html.Node {
	t.Helper()
	var decoy *html.Node
	walkElements(doc.Root(), func(n *html.Node) {
		if n.Data == "a" && GetAttr(n, "href") == "" && GetAttr(n, "data-selected-links") == "repo_source" {
			decoy = n
		}
	})
	if decoy == nil {
		t.Fatal("decoy item not found in fixture")
	}
	return decoy
}
