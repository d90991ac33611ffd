package classify

import (
	"regexp"
	"strings"

	"github.com/sdejongh/mergescout/pkg/models"
)

// rule pairs a predicate with the type it assigns and the minimum difficulty
// that type implies. Rules are evaluated in order; the first match wins.
type rule struct {
	ctype models.ConflictType
	floor models.Difficulty
	match func(ours, theirs string) bool
}

// rules is the per-block classification order. LOGIC is the fallback when
// nothing matches and is handled by the classifier itself.
var rules = []rule{
	{ctype: models.ConflictImport, floor: models.DifficultyEasy, match: matchImport},
	{ctype: models.ConflictWhitespace, floor: models.DifficultyEasy, match: matchWhitespace},
	{ctype: models.ConflictFunctionSignature, floor: models.DifficultyMedium, match: matchSignature},
	{ctype: models.ConflictRename, floor: models.DifficultyMedium, match: matchRename},
}

var importKeywords = []string{"import ", "from ", "#include", "require("}

var signatureKeywords = []string{"def ", "function ", "func ", "class "}

var wordPattern = regexp.MustCompile(`\w+`)

func matchImport(ours, theirs string) bool {
	return containsAny(ours+theirs, importKeywords)
}

// matchWhitespace reports whether the two sides are identical once spaces,
// tabs and newlines are removed.
func matchWhitespace(ours, theirs string) bool {
	return stripWhitespace(ours) == stripWhitespace(theirs)
}

func matchSignature(ours, theirs string) bool {
	return containsAny(ours+theirs, signatureKeywords)
}

// matchRename treats a small, purely non-numeric difference between the word
// tokens on each side as an identifier rename. A difference containing a
// numeric token (e.g. a changed constant) is never a rename.
func matchRename(ours, theirs string) bool {
	oursWords := wordSet(ours)
	theirsWords := wordSet(theirs)
	diff := symmetricDifference(oursWords, theirsWords)

	for word := range diff {
		if isNumeric(word) {
			return false
		}
	}

	return len(diff) < 3 && len(oursWords) > 0
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func stripWhitespace(text string) string {
	replacer := strings.NewReplacer(" ", "", "\t", "", "\n", "")
	return replacer.Replace(text)
}

func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range wordPattern.FindAllString(text, -1) {
		words[word] = struct{}{}
	}
	return words
}

func symmetricDifference(a, b map[string]struct{}) map[string]struct{} {
	diff := make(map[string]struct{})
	for word := range a {
		if _, ok := b[word]; !ok {
			diff[word] = struct{}{}
		}
	}
	for word := range b {
		if _, ok := a[word]; !ok {
			diff[word] = struct{}{}
		}
	}
	return diff
}

func isNumeric(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(word) > 0
}
