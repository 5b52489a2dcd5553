package ingredient

import (
	"strings"
)

// qualifiers are descriptive tokens that never change what an ingredient
// is, only its form or grade. They are dropped during normalization.
var qualifiers = map[string]bool{
	"fresh":    true,
	"freshly":  true,
	"organic":  true,
	"frozen":   true,
	"canned":   true,
	"dried":    true,
	"diced":    true,
	"chopped":  true,
	"sliced":   true,
	"minced":   true,
	"grated":   true,
	"shredded": true,
	"crushed":  true,
	"peeled":   true,
	"cooked":   true,
	"raw":      true,
	"ripe":     true,
	"whole":    true,
	"large":    true,
	"medium":   true,
	"small":    true,
	"extra":    true,
	"finely":   true,
	"thinly":   true,
	"roughly":  true,
	"boneless": true,
	"skinless": true,
	"unsalted": true,
	"salted":   true,
	"toasted":  true,
	"leftover": true,
}

// singularProtected are names whose trailing "s" is part of the word,
// not a plural marker.
var singularProtected = map[string]bool{
	"molasses":  true,
	"couscous":  true,
	"hummus":    true,
	"asparagus": true,
	"swiss":     true,
	"citrus":    true,
	"grits":     true,
}

// Normalize maps a free-text ingredient name to its canonical form for
// comparison: lowercased, qualifiers and parentheticals stripped,
// punctuation collapsed, common plurals reduced to the base noun.
// It never returns an empty string for non-empty input, and it is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	original := strings.ToLower(strings.TrimSpace(name))
	if original == "" {
		return ""
	}

	s := stripParentheticals(original)

	// Collapse punctuation into token separators
	s = strings.Map(func(r rune) rune {
		switch r {
		case '&', '(', ')', ',', '.', '/', '-':
			return ' '
		}
		return r
	}, s)

	tokens := strings.Fields(s)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if qualifiers[token] {
			continue
		}
		kept = append(kept, token)
	}

	// Full stripping must not empty the name
	if len(kept) == 0 {
		return original
	}

	kept[len(kept)-1] = singularize(kept[len(kept)-1])

	return strings.Join(kept, " ")
}

// stripParentheticals removes "(...)" notes from the name
func stripParentheticals(s string) string {
	for {
		open := strings.Index(s, "(")
		if open < 0 {
			return s
		}
		close := strings.Index(s[open:], ")")
		if close < 0 {
			return s[:open] + " " + s[open+1:]
		}
		s = s[:open] + " " + s[open+close+1:]
	}
}

// singularize reduces a common plural food noun to its base form
func singularize(word string) string {
	if len(word) < 4 || singularProtected[word] {
		return word
	}

	if strings.HasSuffix(word, "ies") {
		return word[:len(word)-3] + "y" // berries -> berry
	}

	for _, suffix := range []string{"oes", "ches", "shes", "sses", "xes"} {
		if strings.HasSuffix(word, suffix) {
			return word[:len(word)-2] // tomatoes -> tomato
		}
	}

	if strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") &&
		!strings.HasSuffix(word, "is") {
		return word[:len(word)-1]
	}

	return word
}
