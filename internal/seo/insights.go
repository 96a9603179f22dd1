package seo

import (
	"fmt"
	"strings"

	"github.com/microstock-labs/stockmeta/internal/models"
)

// CompetitorInsights summarizes what sells in a category and where the
// market is underserved. The tables are curated, not measured.
type CompetitorInsights struct {
	CommonPatterns                []string `json:"common_patterns"`
	SuccessfulKeywordCombinations []string `json:"successful_keyword_combinations"`
	MarketGaps                    []string `json:"market_gaps"`
	RecommendedFocus              string   `json:"recommended_focus"`
}

var categoryInsights = []struct {
	Pattern  string
	Insights CompetitorInsights
}{
	{"business", CompetitorInsights{
		CommonPatterns:                []string{"corporate team", "professional meeting", "office workspace", "business strategy"},
		SuccessfulKeywordCombinations: []string{"corporate + professional", "team + collaboration", "office + modern"},
		MarketGaps:                    []string{"remote work wellness", "hybrid office design", "sustainable business practices"},
		RecommendedFocus:              "Focus on modern workplace trends and remote collaboration themes",
	}},
	{"technology", CompetitorInsights{
		CommonPatterns:                []string{"artificial intelligence", "digital innovation", "tech startup", "data visualization"},
		SuccessfulKeywordCombinations: []string{"AI + innovation", "digital + transformation", "tech + modern"},
		MarketGaps:                    []string{"quantum computing visuals", "blockchain illustrations", "metaverse concepts"},
		RecommendedFocus:              "Emphasize cutting-edge tech concepts and futuristic designs",
	}},
	{"nature", CompetitorInsights{
		CommonPatterns:                []string{"natural landscape", "eco-friendly", "sustainability", "green energy"},
		SuccessfulKeywordCombinations: []string{"eco + sustainable", "nature + conservation", "green + renewable"},
		MarketGaps:                    []string{"urban nature integration", "climate change solutions", "biodiversity protection"},
		RecommendedFocus:              "Highlight environmental consciousness and climate action themes",
	}},
}

var defaultInsights = CompetitorInsights{
	CommonPatterns:                []string{"modern design", "creative concept", "professional quality", "high resolution"},
	SuccessfulKeywordCombinations: []string{"modern + creative", "professional + quality", "design + concept"},
	MarketGaps:                    []string{"personalized content", "accessibility focused", "multi-cultural perspectives"},
	RecommendedFocus:              "Focus on unique perspectives and underserved market segments",
}

// InsightsFor returns curated competitor insights for a category,
// first pattern match wins.
func InsightsFor(category string) CompetitorInsights {
	categoryLower := strings.ToLower(category)
	for _, ci := range categoryInsights {
		if strings.Contains(categoryLower, ci.Pattern) {
			return ci.Insights
		}
	}
	return defaultInsights
}

// generateSuggestions turns metric thresholds into short, actionable
// strings. The category's recommended focus is always included, plus up
// to 2 market gaps.
func generateSuggestions(category string, metrics models.SeoMetrics, trendAdditions []string) []string {
	var suggestions []string

	if metrics.TitleScore < 70 {
		suggestions = append(suggestions, "Work more high-priority keywords into the title and keep it between 6 and 12 words")
	}
	if metrics.DescriptionScore < 70 {
		suggestions = append(suggestions, "Expand the description toward 150-200 characters and mention the strongest keywords")
	}
	if metrics.KeywordDensity < 2 {
		suggestions = append(suggestions, "Title and description barely reference the keyword list; weave a few top keywords into both")
	}
	if metrics.TrendRelevance < 10 {
		suggestions = append(suggestions, "Few keywords match current trends; consider adding rising search terms")
	}
	if len(trendAdditions) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Added trending keywords for this category: %s", strings.Join(trendAdditions, ", ")))
	}

	insights := InsightsFor(category)
	suggestions = append(suggestions, insights.RecommendedFocus)
	if len(insights.MarketGaps) > 0 {
		gaps := insights.MarketGaps
		if len(gaps) > 2 {
			gaps = gaps[:2]
		}
		suggestions = append(suggestions, fmt.Sprintf("Explore market gaps: %s", strings.Join(gaps, ", ")))
	}

	return suggestions
}
