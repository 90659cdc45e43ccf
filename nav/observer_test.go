package nav

import (
	"testing"

	"golang.org/x/net/html"
)

func newMarkerNode(name, value string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "meta", DataAtom: 0}
	SetAttr(n, "name", name)
	if value != "" {
		SetAttr(n, "value", value)
	}
	return n
}

func TestWatchHeadReconcilesOnMarkerInsertion(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, testPage)
	ctrl := mustController(t, doc)
	ctrl.WatchHead()

	// Simulate the host page's async navigation: the old marker goes away
	// and a new one is inserted wholesale.
	old := doc.Markers(Options{}).Marker()
	doc.RemoveFromHead(old.Node())
	doc.InsertIntoHead(newMarkerNode("selected-link", "repo_issues"))

	states := itemStates(t, ctrl.Reconciler())
	if !states["repo_issues"] {
		t.Fatal("issues tab not selected after marker insertion")
	}
	if states["repo_source repo_commits"] {
		t.Fatal("stale selection survived marker insertion")
	}
}

func TestWatchHeadMatchesManualReadAndApply(t *testing.T) {
	t.Parallel()
	observed := mustParse(t, testPage)
	obsCtrl := mustController(t, observed)
	obsCtrl.WatchHead()
	observed.InsertIntoHead(newMarkerNode("selected-link", "repo_pulls"))
	observedBytes, err := observed.Bytes()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	manual := mustParse(t, testPage)
	manCtrl := mustController(t, manual)
	node := newMarkerNode("selected-link", "repo_pulls")
	manual.InsertIntoHead(node)
	manCtrl.ReadAndApplyTrusted(NewMarker(node, "value"))
	manualBytes, err := manual.Bytes()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(observedBytes) != string(manualBytes) {
		t.Fatal("observer path and manual read-and-apply diverged")
	}
}

func TestWatchHeadIgnoresUnrelatedInsertions(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, testPage)
	ctrl := mustController(t, doc)
	ctrl.SelectLink("repo_source")
	ctrl.WatchHead()
	before, err := doc.Bytes()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	other := &html.Node{Type: html.ElementNode, Data: "link"}
	SetAttr(other, "rel", "stylesheet")
	doc.InsertIntoHead(other)
	wrongName := newMarkerNode("analytics-id", "xyz")
	doc.InsertIntoHead(wrongName)

	after, err := doc.Bytes()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// Only the two inserted head elements may differ; selection state must not.
	states := itemStates(t, ctrl.Reconciler())
	if !states["repo_source repo_commits"] {
		t.Fatal("selection changed after unrelated head insertions")
	}
	if len(before) == len(after) {
		t.Fatal("insertions did not land in the document")
	}
}

func TestQualifiesAsMarker(t *testing.T) {
	t.Parallel()
	opts := Options{}.WithDefaults()
	tests := []struct {
		name string
		node *html.Node
		want bool
	}{
		{"marker", newMarkerNode("selected-link", "x"), true},
		{"marker without value", newMarkerNode("selected-link", ""), true},
		{"wrong name", newMarkerNode("viewport", "x"), false},
		{"wrong element", &html.Node{Type: html.ElementNode, Data: "link"}, false},
		{"text node", &html.Node{Type: html.TextNode, Data: "selected-link"}, false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := qualifiesAsMarker(tc.node, opts); got != tc.want {
				t.Fatalf("qualifiesAsMarker(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
