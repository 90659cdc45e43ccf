package augment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"navsync/nav"
)

func TestSiteConfigSuffixLookup(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `{"container": ".AppHeader-localBar", "selected_class": "current"}`
	if err := os.WriteFile(filepath.Join(dir, "example.com.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write site config: %v", err)
	}
	store := newSiteConfigStore(dir)

	cfg := store.Find("https://gist.example.com/user/repo")
	if cfg == nil {
		t.Fatal("subdomain did not resolve to the parent host config")
	}
	opts := cfg.apply(nav.Options{}).WithDefaults()
	if opts.ContainerSelector != ".AppHeader-localBar" {
		t.Fatalf("ContainerSelector = %q", opts.ContainerSelector)
	}
	if opts.SelectedClass != "current" {
		t.Fatalf("SelectedClass = %q", opts.SelectedClass)
	}
	// Fields the override leaves alone keep their defaults.
	if opts.TagListAttr != "data-selected-links" {
		t.Fatalf("TagListAttr = %q", opts.TagListAttr)
	}

	if store.Find("https://other.net/") != nil {
		t.Fatal("unknown host resolved to a config")
	}
}

func TestPageCacheTTL(t *testing.T) {
	t.Parallel()
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	cache := newPageCache(clock, time.Minute)
	opts := nav.Options{}

	cache.Store("http://example.com", "repo_issues", opts, []byte("page"))
	if got, ok := cache.Get("http://example.com", "repo_issues", opts); !ok || string(got) != "page" {
		t.Fatalf("fresh entry: got %q, ok=%v", got, ok)
	}
	if _, ok := cache.Get("http://example.com", "repo_source", opts); ok {
		t.Fatal("different tab hit the same cache entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("http://example.com", "repo_issues", opts); ok {
		t.Fatal("expired entry served from cache")
	}
}
