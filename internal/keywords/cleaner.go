package keywords

import (
	"regexp"
	"strings"
)

// MaxKeywords is the pipeline-wide cap on retained keywords.
const MaxKeywords = 50

var (
	keywordStripRe     = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	titleStripRe       = regexp.MustCompile(`[^a-zA-Z0-9\s,]`)
	descriptionStripRe = regexp.MustCompile(`["'@#*%^=+<>]`)
)

// stopWords are keywords that carry no buyer search value on stock
// platforms: generic marketing adjectives, colors, shapes, and
// technical/format terms.
var stopWords = buildStopWords(
	// generic
	[]string{
		"image", "photo", "picture", "design", "creative", "beautiful", "modern",
		"awesome", "amazing", "perfect", "great", "nice", "good", "best", "new",
		"cool", "fresh", "clean", "simple", "elegant", "stylish", "trendy",
	},
	// colors
	[]string{
		"white", "black", "red", "blue", "green", "yellow", "orange", "purple",
		"pink", "brown", "gray", "grey", "silver", "gold", "colorful", "bright",
		"dark", "light", "color", "colors", "colour", "colours",
	},
	// shapes
	[]string{
		"round", "square", "circle", "triangle", "rectangle", "oval", "diamond",
		"star", "heart", "arrow", "line", "curve", "straight", "shape", "shapes",
	},
	// technical / format
	[]string{
		"vector", "digital", "file", "quality", "resolution", "pixel", "format",
		"jpg", "png", "svg", "ai", "eps", "pdf", "download", "upload", "size",
		"dimension", "layer", "transparent", "background",
	},
)

// synonymGroups lists near-duplicate pairs; within one keyword list only
// the first member of a group to appear survives.
var synonymGroups = [][]string{
	{"graphic", "graphics"},
	{"element", "elements"},
	{"icon", "icons"},
	{"template", "templates"},
	{"business", "corporate"},
	{"app", "application"},
}

func buildStopWords(lists ...[]string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			words[w] = struct{}{}
		}
	}
	return words
}

// Clean normalizes a raw keyword list: strips punctuation, drops stop
// words, collapses synonym groups and naive singular/plural duplicates,
// and caps the result at MaxKeywords. Relative order is preserved, so
// the operation is deterministic and idempotent.
func Clean(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	usedGroups := make(map[int]struct{})

	for _, keyword := range raw {
		keyword = strings.TrimSpace(keywordStripRe.ReplaceAllString(keyword, ""))
		if keyword == "" {
			continue
		}

		lower := strings.ToLower(keyword)
		if _, stop := stopWords[lower]; stop {
			continue
		}

		if group, hit := synonymGroup(lower); hit {
			if _, taken := usedGroups[group]; taken {
				continue
			}
			usedGroups[group] = struct{}{}
		}

		if isDuplicate(cleaned, lower) {
			continue
		}

		cleaned = append(cleaned, keyword)
		if len(cleaned) == MaxKeywords {
			break
		}
	}

	return cleaned
}

func synonymGroup(lower string) (int, bool) {
	for i, group := range synonymGroups {
		for _, syn := range group {
			if lower == syn {
				return i, true
			}
		}
	}
	return 0, false
}

// isDuplicate reports whether lower already exists in the list, exactly
// or as a naive singular/plural variant of an earlier keyword.
func isDuplicate(existing []string, lower string) bool {
	for _, kw := range existing {
		kwLower := strings.ToLower(kw)
		if kwLower == lower || kwLower+"s" == lower || lower+"s" == kwLower {
			return true
		}
	}
	return false
}

// CleanTitle strips everything except letters, digits, spaces and commas.
func CleanTitle(title string) string {
	return strings.TrimSpace(titleStripRe.ReplaceAllString(title, ""))
}

// CleanDescription strips quotes and symbols that break CSV consumers
// and platform metadata validators.
func CleanDescription(description string) string {
	return strings.TrimSpace(descriptionStripRe.ReplaceAllString(description, ""))
}
