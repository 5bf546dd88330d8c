package taxonomy

import (
	"sort"
	"strings"
	"unicode"
)

const DefaultSearchLimit = 10

type Hit struct {
	Skill       string `json:"skill"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type rank int

const (
	rankExact rank = iota
	rankPrefix
	rankSubstring
)

type entry struct {
	hit        Hit
	normalized string
}

// Catalog is a read-only search index over a set of categories.
type Catalog struct {
	entries  []entry
	synonyms map[string]string
}

func NewCatalog(categories []Category, synonyms map[string]string) *Catalog {
	c := &Catalog{synonyms: make(map[string]string, len(synonyms))}
	for k, v := range synonyms {
		nk := NormalizeQuery(k)
		if nk == "" {
			continue
		}
		c.synonyms[nk] = v
	}

	seen := make(map[Hit]struct{})
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			for _, s := range sub.Skills {
				h := Hit{Skill: s, Category: cat.Name, Subcategory: sub.Name}
				if _, ok := seen[h]; ok {
					continue
				}
				seen[h] = struct{}{}
				c.entries = append(c.entries, entry{hit: h, normalized: NormalizeQuery(s)})
			}
		}
	}
	return c
}

// NormalizeQuery lower-cases the input, drops punctuation and collapses
// whitespace.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve maps a synonym to its canonical skill name. Unknown input is
// returned unchanged.
func (c *Catalog) Resolve(term string) string {
	if v, ok := c.synonyms[NormalizeQuery(term)]; ok {
		return v
	}
	return term
}

func (c *Catalog) variants(normalized string) []string {
	out := []string{normalized}
	add := func(s string) {
		s = NormalizeQuery(s)
		if s == "" {
			return
		}
		for _, v := range out {
			if v == s {
				return
			}
		}
		out = append(out, s)
	}

	if syn, ok := c.synonyms[normalized]; ok {
		add(syn)
	}

	// first token synonym, e.g. "k8s operator" -> "kubernetes operator"
	words := strings.Fields(normalized)
	if len(words) > 1 {
		if syn, ok := c.synonyms[words[0]]; ok {
			add(syn + " " + strings.Join(words[1:], " "))
		}
	}
	return out
}

// Search returns skills whose name matches the query or one of its synonym
// expansions. Exact matches rank before prefix matches, which rank before
// substring matches.
func (c *Catalog) Search(query string, limit int) []Hit {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return []Hit{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	variants := c.variants(normalized)

	type scored struct {
		hit  Hit
		rank rank
	}
	matches := make([]scored, 0)
	for _, e := range c.entries {
		best, ok := rankEntry(e.normalized, variants)
		if !ok {
			continue
		}
		matches = append(matches, scored{hit: e.hit, rank: best})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		if matches[i].hit.Skill != matches[j].hit.Skill {
			return matches[i].hit.Skill < matches[j].hit.Skill
		}
		return matches[i].hit.Category < matches[j].hit.Category
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Hit, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.hit)
	}
	return out
}

// Lookup finds the catalog entry for a skill name, honoring synonyms.
func (c *Catalog) Lookup(skillName string) (Hit, bool) {
	target := NormalizeQuery(c.Resolve(skillName))
	if target == "" {
		return Hit{}, false
	}
	for _, e := range c.entries {
		if e.normalized == target {
			return e.hit, true
		}
	}
	return Hit{}, false
}

func rankEntry(name string, variants []string) (rank, bool) {
	best := rankSubstring + 1
	for _, v := range variants {
		switch {
		case name == v:
			return rankExact, true
		case strings.HasPrefix(name, v):
			if rankPrefix < best {
				best = rankPrefix
			}
		case strings.Contains(name, v):
			if rankSubstring < best {
				best = rankSubstring
			}
		}
	}
	if best > rankSubstring {
		return 0, false
	}
	return best, true
}
