package seo

import (
	"strings"

	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/models"
)

// commercialTerms in a title signal licensing intent to platform search.
var commercialTerms = []string{"business", "professional", "corporate", "commercial", "premium", "marketing"}

func calculateSeoMetrics(title, description string, finalKeywords []string) models.SeoMetrics {
	return models.SeoMetrics{
		TitleScore:          titleScore(title, finalKeywords),
		DescriptionScore:    descriptionScore(description, finalKeywords),
		KeywordDensity:      keywordDensity(title, description, finalKeywords),
		Readability:         readability(description),
		CompetitorAlignment: competitorAlignment(finalKeywords),
		TrendRelevance:      trendRelevance(finalKeywords),
	}
}

func titleScore(title string, kws []string) int {
	score := 50
	wordCount := len(strings.Fields(title))
	switch {
	case wordCount >= minTitleWords && wordCount <= maxTitleWords:
		score += 20
	case wordCount < minTitleWords:
		score -= 10
	default:
		score -= 5
	}

	inTitle := countContained(title, kws)
	score += minInt(20, inTitle*5)

	titleLower := strings.ToLower(title)
	for _, term := range commercialTerms {
		if strings.Contains(titleLower, term) {
			score += 10
			break
		}
	}

	return clampPercent(score)
}

func descriptionScore(description string, kws []string) int {
	score := 50
	length := len([]rune(description))
	switch {
	case length >= minDescription && length <= maxDescription:
		score += 25
	case length < minDescription:
		score -= 10
	default:
		score -= 5
	}

	inDescription := countContained(description, kws)
	score += minInt(15, inDescription*3)

	return clampPercent(score)
}

// keywordDensity is keyword occurrences per word across title and
// description, as a percentage.
func keywordDensity(title, description string, kws []string) float64 {
	text := strings.ToLower(title + " " + description)
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0
	}

	occurrences := 0
	for _, kw := range kws {
		occurrences += strings.Count(text, strings.ToLower(kw))
	}

	density := float64(occurrences) / float64(wordCount) * 100
	if density > 100 {
		density = 100
	}
	return density
}

// readability is a rough plain-language score over the description:
// short sentences and short words read better in search snippets.
func readability(description string) int {
	words := strings.Fields(description)
	if len(words) == 0 {
		return 0
	}

	sentences := strings.FieldsFunc(description, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentenceCount := 0
	for _, s := range sentences {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	score := 70
	wordsPerSentence := float64(len(words)) / float64(sentenceCount)
	if wordsPerSentence > 20 {
		score -= 15
	} else if wordsPerSentence <= 12 {
		score += 15
	}

	letters := 0
	for _, w := range words {
		letters += len(w)
	}
	if float64(letters)/float64(len(words)) > 8 {
		score -= 10
	} else {
		score += 10
	}

	return clampPercent(score)
}

// competitorAlignment is the share of keywords matching the high-value
// category tables.
func competitorAlignment(kws []string) int {
	if len(kws) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range kws {
		if keywords.MatchesHighValueSegment(kw) {
			matched++
		}
	}
	return clampPercent(matched * 100 / len(kws))
}

// trendRelevance is the share of keywords matching the trending list.
func trendRelevance(kws []string) int {
	if len(kws) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range kws {
		if _, ok := keywords.MatchesTrending(kw); ok {
			matched++
		}
	}
	return clampPercent(matched * 100 / len(kws))
}

func countContained(text string, kws []string) int {
	textLower := strings.ToLower(text)
	count := 0
	for _, kw := range kws {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
