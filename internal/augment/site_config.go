package augment

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"navsync/nav"
)

// SiteConfig overrides the page hooks for one host. Files live under the
// sites dir as <host>.json; lookup walks domain suffixes so "github.com"
// also covers "gist.github.com".
type SiteConfig struct {
	ContainerSelector string `json:"container,omitempty"`
	ItemClass         string `json:"item_class,omitempty"`
	TagListAttr       string `json:"tag_list_attr,omitempty"`
	SelectedClass     string `json:"selected_class,omitempty"`
	MarkerElement     string `json:"marker_element,omitempty"`
	MarkerName        string `json:"marker_name,omitempty"`
	MarkerValueAttr   string `json:"marker_value_attr,omitempty"`
}

func (sc *SiteConfig) apply(opts nav.Options) nav.Options {
	if sc.ContainerSelector != "" {
		opts.ContainerSelector = sc.ContainerSelector
	}
	if sc.ItemClass != "" {
		opts.ItemClass = sc.ItemClass
	}
	if sc.TagListAttr != "" {
		opts.TagListAttr = sc.TagListAttr
	}
	if sc.SelectedClass != "" {
		opts.SelectedClass = sc.SelectedClass
	}
	if sc.MarkerElement != "" {
		opts.MarkerElement = sc.MarkerElement
	}
	if sc.MarkerName != "" {
		opts.MarkerName = sc.MarkerName
	}
	if sc.MarkerValueAttr != "" {
		opts.MarkerValueAttr = sc.MarkerValueAttr
	}
	return opts
}

type siteConfigStore struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*SiteConfig
}

func newSiteConfigStore(dir string) *siteConfigStore {
	return &siteConfigStore{
		dir:   dir,
		cache: make(map[string]*SiteConfig),
	}
}

func (s *siteConfigStore) Find(target string) *SiteConfig {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return nil
	}
	host := u.Host
	s.mu.RLock()
	if cfg, ok := s.cache[host]; ok {
		s.mu.RUnlock()
		return cfg
	}
	s.mu.RUnlock()

	labels := strings.Split(host, ".")
	for i := 0; i < len(labels); i++ {
		candidate := strings.Join(labels[i:], ".")
		if cfg := s.load(candidate); cfg != nil {
			s.mu.Lock()
			s.cache[host] = cfg
			s.mu.Unlock()
			return cfg
		}
	}
	s.mu.Lock()
	s.cache[host] = nil
	s.mu.Unlock()
	return nil
}

func (s *siteConfigStore) load(host string) *SiteConfig {
	if s.dir == "" {
		return nil
	}
	path := filepath.Join(s.dir, host+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var cfg SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	return &cfg
}
