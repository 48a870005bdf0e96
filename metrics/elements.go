package metrics

import (
	"regexp"
	"slices"
	"strings"
)

// Stage is a single step of selector normalization.
type Stage func([]string) []string

// elementPipeline turns flattened selectors into element set. Order matters:
// pseudo-class stripping must see deduplicated tokens and its output has to
// be deduplicated again.
var elementPipeline = []Stage{
	Tokenize,
	SortTokens,
	Dedup,
	StripPseudo,
	Dedup,
	RejectGarbage,
	SortTokens,
}

// ExtractElements returns sorted unique element-like tokens referenced by
// selectors. Any whitespace separated part of a selector which survives
// pseudo-class stripping counts, so class, id and attribute tokens are
// reported along with element names.
func ExtractElements(selectors []string) []string {
	tokens := slices.Clone(selectors)
	for _, stage := range elementPipeline {
		tokens = stage(tokens)
	}
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Tokenize splits every selector on whitespace, removes repeated tokens
// within a single selector and concatenates results.
func Tokenize(selectors []string) []string {
	var out []string
	for _, sel := range selectors {
		fields := strings.Fields(sel)
		seen := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// SortTokens orders tokens lexicographically (byte-wise).
func SortTokens(tokens []string) []string {
	out := slices.Clone(tokens)
	slices.Sort(out)
	return out
}

// Dedup removes repeated tokens keeping the first occurrence.
func Dedup(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// pseudoPattern matches a run of pseudo-classes or pseudo-elements.
var pseudoPattern = regexp.MustCompile(`(:?:[^:]+)+`)

// StripPseudo removes the first run of pseudo-classes and pseudo-elements from
// every token: "a:hover" becomes "a", "input::placeholder" becomes "input".
func StripPseudo(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if loc := pseudoPattern.FindStringIndex(t); loc != nil {
			t = t[:loc[0]] + t[loc[1]:]
		}
		out = append(out, t)
	}
	return out
}

// garbage lists tokens which are not worth reporting: empty leftovers,
// combinators, universal selector and the document root.
var garbage = []string{"", ">", "+", "~", "*", "html"}

// RejectGarbage drops combinators, universal selector, "html" and empty
// tokens, comparison is case insensitive.
func RejectGarbage(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if slices.ContainsFunc(garbage, func(g string) bool { return strings.EqualFold(g, t) }) {
			continue
		}
		out = append(out, t)
	}
	return out
}
