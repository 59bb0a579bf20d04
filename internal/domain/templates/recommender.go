package templates

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultRecommendLimit bounds recommendation lists.
const DefaultRecommendLimit = 3

var wordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Recommender scores templates against draft text by shared keywords.
type Recommender struct {
	templates []*Template
	index     map[string][]string // word -> template names
}

func NewRecommender(templates []*Template) *Recommender {
	r := &Recommender{
		templates: templates,
		index:     make(map[string][]string),
	}
	for _, t := range templates {
		for word := range wordsOf(t.Content) {
			r.index[word] = append(r.index[word], t.Name)
		}
	}
	return r
}

// Recommend returns up to limit template names ranked by score: one point
// per indexed content word shared with text, two per word appearing in a
// template name. Ties break by name for stable output.
func (r *Recommender) Recommend(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	words := wordsOf(text)
	scores := make(map[string]int)
	for word := range words {
		for _, name := range r.index[word] {
			scores[name]++
		}
	}
	for _, t := range r.templates {
		nameLower := strings.ToLower(t.Name)
		for word := range words {
			if strings.Contains(nameLower, word) {
				scores[t.Name] += 2
			}
		}
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func wordsOf(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		words[w] = struct{}{}
	}
	return words
}
