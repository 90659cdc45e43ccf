package augment

import "strings"

// urlDecode converts percent-encoded sequences like %2f into their byte values.
func urlDecode(url string) string {
	b := make([]byte, 0, len(url))
	for i := 0; i < len(url); i++ {
		c := url[i]
		if c == '%' && i+2 < len(url) {
			hi := fromHex(url[i+1])
			lo := fromHex(url[i+2])
			b = append(b, hi<<4|lo)
			i += 2
		} else {
			b = append(b, c)
		}
	}
	return string(b)
}

func fromHex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}

// normalizeTargetURL tolerates double-encoded targets and bare hosts pasted
// without a scheme.
func normalizeTargetURL(u string) string {
	s := strings.TrimSpace(u)
	if s == "" {
		return s
	}
	if strings.Contains(s, "%") {
		s = urlDecode(s)
		if strings.Contains(s, "%3A") || strings.Contains(s, "%2F") || strings.Contains(s, "%2f") {
			s = urlDecode(s)
		}
	}
	lower := strings.ToLower(s)
	if !(strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")) {
		s = "http://" + s
	}
	return s
}
