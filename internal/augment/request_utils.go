package augment

import "net/http"

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// forwardHeaders copies the request headers worth presenting to the
// upstream site.
func forwardHeaders(r *http.Request) http.Header {
	hdr := http.Header{}
	for _, name := range []string{"User-Agent", "Accept-Language", "Accept"} {
		if v := r.Header.Get(name); v != "" {
			hdr.Set(name, v)
		}
	}
	return hdr
}
