package text

import "strings"

// Words treated as interchangeable when comparing license texts. Keyed by
// the variant, valued by the normal form. Covers the spelling and usage
// drift commonly found between otherwise identical license texts.
var equivalentWords = map[string]string{
	"licence":       "license",
	"licences":      "licenses",
	"licensor":      "licenser",
	"analyse":       "analyze",
	"artefact":      "artifact",
	"authorisation": "authorization",
	"authorised":    "authorized",
	"behaviour":     "behavior",
	"favour":        "favor",
	"favours":       "favors",
	"fulfil":        "fulfill",
	"initialise":    "initialize",
	"judgement":     "judgment",
	"organisation":  "organization",
	"organisations": "organizations",
	"practise":      "practice",
	"recognise":     "recognize",
	"sublicence":    "sublicense",
}

// Punctuation variants folded to one form before tokenizing.
var punctuationFolds = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"©", "(c)", // copyright sign
)

// LicenseTextsEquivalent reports whether two license texts match after
// normalization: case folding, punctuation folding, whitespace collapsing,
// and equivalent-word substitution. Differences the normalization does not
// cover (actual wording changes) make the texts non-equivalent.
func LicenseTextsEquivalent(a, b string) bool {
	ta := normalizeTokens(a)
	tb := normalizeTokens(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

func normalizeTokens(s string) []string {
	s = strings.ToLower(punctuationFolds.Replace(s))
	tokens := strings.Fields(s)
	normalized := tokens[:0]
	for _, tok := range tokens {
		tok = strings.Trim(tok, `.,;:'"()[]`)
		if tok == "" {
			continue
		}
		if normal, ok := equivalentWords[tok]; ok {
			tok = normal
		}
		normalized = append(normalized, tok)
	}
	return normalized
}
