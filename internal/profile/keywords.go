package profile

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const minKeywordLen = 4

var (
	hashtagRe = regexp.MustCompile(`#([A-Za-z0-9_]+)`)
	mentionRe = regexp.MustCompile(`@([A-Za-z0-9_.]+)`)
)

// ExtractHashtags returns the case-folded hashtag names found in text, in
// order of first appearance, without the # symbol.
func ExtractHashtags(text string) []string {
	return extractTags(hashtagRe, text)
}

// ExtractMentions returns the case-folded mentioned usernames found in text,
// without the @ symbol.
func ExtractMentions(text string) []string {
	return extractTags(mentionRe, text)
}

func extractTags(re *regexp.Regexp, text string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// InterestKeywords derives the deduplicated lowercase interest set from a
// profile: every hashtag, plus caption and bio words longer than three
// characters. The result is sorted so responses are stable.
func InterestKeywords(p Profile) []string {
	seen := map[string]bool{}
	addWord := func(word string) {
		word = strings.ToLower(word)
		if len([]rune(word)) >= minKeywordLen && !seen[word] {
			seen[word] = true
		}
	}

	for _, post := range p.Posts {
		// hashtags are curated by the author, keep them regardless of length
		for _, tag := range post.Hashtags {
			if !seen[tag] {
				seen[tag] = true
			}
		}
		for _, w := range splitWords(post.Caption) {
			addWord(w)
		}
	}
	for _, w := range splitWords(p.Bio) {
		addWord(w)
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// splitWords breaks free text into alphanumeric runs, which also strips the
// #/@ symbols so tag names count as plain words.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
