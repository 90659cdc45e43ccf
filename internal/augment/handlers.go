package augment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"navsync/nav"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(s.cfg.IndexHTML)))
	io.WriteString(w, s.cfg.IndexHTML)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "pong")
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	base := firstNonEmpty(r.FormValue("url"), r.URL.Query().Get("url"))
	if base == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}
	target := normalizeTargetURL(base)
	tab := firstNonEmpty(r.FormValue("tab"), r.URL.Query().Get("tab"))
	s.logger.Printf("IN %s %s from %s | tab=%q -> target=%s", r.Method, r.URL.String(), r.RemoteAddr, tab, target)

	opts := s.navOptions(target)
	if body, ok := s.cache.Get(target, tab, opts); ok {
		s.logger.Printf("CACHE hit %s tab=%q", target, tab)
		writeHTML(w, body)
		return
	}

	body, err := s.upstream.FetchHTML(r.Context(), target, forwardHeaders(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	out, err := applySelection(body, tab, opts)
	if err != nil {
		http.Error(w, err.Error(), selectionStatus(err))
		return
	}
	s.cache.Store(target, tab, opts, out)
	writeHTML(w, out)
}

// applySelection parses the fetched page and applies the selection. An empty
// tab runs only the passive read path, so pages arrive with whatever the
// marker already says.
func applySelection(body []byte, tab string, opts nav.Options) ([]byte, error) {
	doc, err := nav.ParseBytes(body)
	if err != nil {
		return nil, err
	}
	ctrl, err := nav.NewController(doc, opts)
	if err != nil {
		return nil, err
	}
	marker := doc.Markers(opts).Marker()
	if tab == "" {
		if marker != nil {
			ctrl.ReadAndApply(marker)
		}
		return doc.Bytes()
	}
	// The core treats a missing marker as an environment fault; for remote
	// pages that structure is not under our control, so guard it here.
	if marker == nil {
		return nil, fmt.Errorf("augment: page has no selection marker")
	}
	if err := ctrl.SelectLink(tab); err != nil {
		return nil, err
	}
	return doc.Bytes()
}

func selectionStatus(err error) int {
	var invalid *nav.InvalidTagError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var noMatch *nav.NoMatchingTabError
	if errors.As(err, &noMatch) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusUnprocessableEntity
}

type inspectItem struct {
	TagList       string `json:"tag_list"`
	SelectedClass bool   `json:"selected_class"`
	AriaCurrent   bool   `json:"aria_current"`
}

type inspectReport struct {
	Target        string        `json:"target"`
	MarkerPresent bool          `json:"marker_present"`
	MarkerValue   string        `json:"marker_value,omitempty"`
	Items         []inspectItem `json:"items"`
	StyleStyled   bool          `json:"selected_class_styled"`
	StyleRules    []string      `json:"styled_selectors,omitempty"`
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}
	target = normalizeTargetURL(target)
	opts := s.navOptions(target)

	body, err := s.upstream.FetchHTML(r.Context(), target, forwardHeaders(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	doc, err := nav.ParseBytes(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	report := inspectReport{Target: target}
	if m := doc.Markers(opts).Marker(); m != nil {
		report.MarkerPresent = true
		report.MarkerValue = m.Value()
	}
	rec, err := nav.NewReconciler(doc, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for _, st := range rec.States() {
		report.Items = append(report.Items, inspectItem{
			TagList:       st.TagList,
			SelectedClass: st.SelectedClass,
			AriaCurrent:   st.AriaCurrent,
		})
	}
	audit := nav.AuditStyles(doc, opts)
	report.StyleStyled = audit.Styled
	report.StyleRules = audit.Selectors

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(&report); err != nil {
		s.logger.Printf("ERR inspect encode: %v", err)
	}
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}
