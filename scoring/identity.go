package scoring

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions caps how many similar names Suggest returns.
const maxSuggestions = 3

// Resolver maps roster nicknames to the canonical names used upstream.
type Resolver struct {
	nicknames map[string]string
}

func NewResolver(nicknames map[string]string) *Resolver {
	m := make(map[string]string, len(nicknames))
	for k, v := range nicknames {
		m[k] = v
	}
	return &Resolver{nicknames: m}
}

// Resolve returns the canonical name for a nickname. A nickname without an
// entry is already canonical.
func (r *Resolver) Resolve(nickname string) string {
	if c, ok := r.nicknames[nickname]; ok {
		return c
	}
	return nickname
}

// Suggest returns up to three candidates that fuzzily contain the nickname,
// closest first. It is only used to help fix the nickname map.
func (r *Resolver) Suggest(nickname string, candidates []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(nickname, candidates)
	if canonical := r.Resolve(nickname); canonical != nickname {
		ranks = append(ranks, fuzzy.RankFindNormalizedFold(canonical, candidates)...)
	}
	sort.Sort(ranks)

	seen := make(map[string]bool)
	var res []string
	for _, rk := range ranks {
		if seen[rk.Target] {
			continue
		}
		seen[rk.Target] = true
		res = append(res, rk.Target)
		if len(res) == maxSuggestions {
			break
		}
	}
	return res
}
