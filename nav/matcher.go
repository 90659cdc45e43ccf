package nav

import "strings"

// MatchesTag reports whether tag appears as an exact element of the
// space-separated tagList. An empty list never matches, and there are no
// substring matches: "repo_commit" does not match inside "repo_commits".
func MatchesTag(tagList, tag string) bool {
	if tag == "" {
		return false
	}
	for _, t := range strings.Split(tagList, " ") {
		if t == tag {
			return true
		}
	}
	return false
}
