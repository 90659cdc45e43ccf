package nav

import "testing"

func TestMatchesTag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		tagList string
		tag     string
		want    bool
	}{
		{"single match", "repo_commits", "repo_commits", true},
		{"second of two", "repo_source repo_commits", "repo_commits", true},
		{"first of two", "repo_source repo_commits", "repo_source", true},
		{"absent", "repo_source repo_commits", "repo_issues", false},
		{"no substring match", "repo_commits repo_source", "repo_commit", false},
		{"no superstring match", "repo_commit", "repo_commits", false},
		{"empty list", "", "repo_commits", false},
		{"empty tag", "repo_source repo_commits", "", false},
		{"both empty", "", "", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesTag(tc.tagList, tc.tag); got != tc.want {
				t.Fatalf("MatchesTag(%q, %q) = %v, want %v", tc.tagList, tc.tag, got, tc.want)
			}
		})
	}
}
