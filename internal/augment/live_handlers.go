package augment

import (
	"errors"
	"io"
	"net/http"

	"navsync/nav"
)

// The /live endpoints mirror /rewrite against a real browser tab instead of
// a server-side parse: attach installs the observer bridge in the page,
// select applies a tag with the same commit-or-rollback semantics.

func (s *Server) handleLiveAttach(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}
	target = normalizeTargetURL(target)

	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	sess := s.liveSessionLocked()
	if err := sess.Attach(r.Context(), target, r.UserAgent(), s.navOptions(target)); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "attached "+target)
}

func (s *Server) handleLiveSelect(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		http.Error(w, "missing tab", http.StatusBadRequest)
		return
	}

	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	if s.live == nil {
		http.Error(w, "no live session; call /live/attach first", http.StatusConflict)
		return
	}
	if err := s.live.Select(r.Context(), tab); err != nil {
		status := selectionStatus(err)
		var invalid *nav.InvalidTagError
		var noMatch *nav.NoMatchingTabError
		if !errors.As(err, &invalid) && !errors.As(err, &noMatch) {
			// Not a selection outcome but a browser failure.
			status = http.StatusBadGateway
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "selected "+tab)
}

func (s *Server) handleLiveCurrent(w http.ResponseWriter, r *http.Request) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	if s.live == nil {
		http.Error(w, "no live session; call /live/attach first", http.StatusConflict)
		return
	}
	tag, err := s.live.CurrentTag(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, tag)
}
