package nav

import "testing"

func TestAuditStyles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		page       string
		wantStyled bool
	}{
		{
			name: "selected class styled",
			page: `<html><head><style>
.js-nav-container .selected { font-weight: bold; }
.other { color: red; }
</style></head><body></body></html>`,
			wantStyled: true,
		},
		{
			name: "styled inside media query",
			page: `<html><head><style>
@media (min-width: 600px) { a.selected { color: blue; } }
</style></head><body></body></html>`,
			wantStyled: true,
		},
		{
			name: "longer class name is not a match",
			page: `<html><head><style>
.selected-banner { color: red; }
</style></head><body></body></html>`,
			wantStyled: false,
		},
		{
			name:       "no styles at all",
			page:       `<html><head></head><body></body></html>`,
			wantStyled: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.page)
			report := AuditStyles(doc, Options{})
			if report.Styled != tc.wantStyled {
				t.Fatalf("Styled = %v, want %v (selectors: %v)", report.Styled, tc.wantStyled, report.Selectors)
			}
			if tc.wantStyled && len(report.Selectors) == 0 {
				t.Fatal("Styled without recorded selectors")
			}
		})
	}
}
