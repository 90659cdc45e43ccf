package augment

import "testing"

func TestNormalizeTargetURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain https preserved",
			in:   "https://example.com/path",
			want: "https://example.com/path",
		},
		{
			name: "no scheme adds http",
			in:   "example.com/path",
			want: "http://example.com/path",
		},
		{
			name: "single encoded",
			in:   "https%3A%2F%2Fexample.com%2Fpath",
			want: "https://example.com/path",
		},
		{
			name: "double encoded",
			in:   "https%253A%252F%252Fexample.com%252Fpath",
			want: "https://example.com/path",
		},
		{
			name: "whitespace trimmed",
			in:   "  https://example.com  ",
			want: "https://example.com",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeTargetURL(tc.in); got != tc.want {
				t.Fatalf("normalizeTargetURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
