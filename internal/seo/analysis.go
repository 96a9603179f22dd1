package seo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microstock-labs/stockmeta/internal/models"
)

// Analysis is the keyword-bucket report backing the metrics dashboard:
// scored keywords grouped by what makes them valuable, plus an overall
// 0-100 score and free-text recommendations.
type Analysis struct {
	PrioritizedKeywords    []models.ScoredKeyword `json:"prioritized_keywords"`
	TrendingKeywords       []string               `json:"trending_keywords"`
	HighVolumeKeywords     []string               `json:"high_volume_keywords"`
	LowCompetitionKeywords []string               `json:"low_competition_keywords"`
	CommercialKeywords     []string               `json:"commercial_keywords"`
	LongTailKeywords       []string               `json:"long_tail_keywords"`
	CompetitorInsights     CompetitorInsights     `json:"competitor_insights"`
	SeoScore               int                    `json:"seo_score"`
	Recommendations        []string               `json:"recommendations"`
}

// Analyze buckets a scored keyword list for review. Jittered scores are
// expected here; the buckets are a presentation aid, not an oracle.
func (o *Optimizer) Analyze(meta models.MetadataResult) Analysis {
	scored := o.analyzer.AnalyzeAll(meta.Keywords, meta.Category)

	prioritized := append([]models.ScoredKeyword{}, scored...)
	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].Priority > prioritized[j].Priority
	})

	analysis := Analysis{
		PrioritizedKeywords: prioritized,
		TrendingKeywords: pickKeywords(scored, 10, func(k models.ScoredKeyword) bool {
			return k.Trend == models.TrendRising
		}, byPriority),
		HighVolumeKeywords: pickKeywords(scored, 15, func(k models.ScoredKeyword) bool {
			return k.SearchVolume == models.VolumeHigh
		}, byCommercialValue),
		LowCompetitionKeywords: pickKeywords(scored, 12, func(k models.ScoredKeyword) bool {
			return k.Competition == models.CompetitionLow || k.Competition == models.CompetitionMedium
		}, byPriority),
		CommercialKeywords: pickKeywords(scored, 12, func(k models.ScoredKeyword) bool {
			return k.CommercialValue >= 7
		}, byCommercialValue),
		LongTailKeywords: pickKeywords(scored, 8, func(k models.ScoredKeyword) bool {
			return len(strings.Fields(k.Keyword)) >= 2
		}, byCommercialValue),
		CompetitorInsights: InsightsFor(meta.Category),
	}

	analysis.SeoScore = overallScore(scored, meta.Title, meta.Description)
	analysis.Recommendations = recommendations(analysis)
	return analysis
}

func byPriority(a, b models.ScoredKeyword) bool        { return a.Priority > b.Priority }
func byCommercialValue(a, b models.ScoredKeyword) bool { return a.CommercialValue > b.CommercialValue }

func pickKeywords(scored []models.ScoredKeyword, limit int, keep func(models.ScoredKeyword) bool, less func(a, b models.ScoredKeyword) bool) []string {
	matched := make([]models.ScoredKeyword, 0, len(scored))
	for _, sk := range scored {
		if keep(sk) {
			matched = append(matched, sk)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]string, len(matched))
	for i, sk := range matched {
		out[i] = sk.Keyword
	}
	return out
}

// overallScore blends keyword quality with how well the title and
// description actually use the keywords.
func overallScore(scored []models.ScoredKeyword, title, description string) int {
	score := 0.0

	highPriority := 0
	trending := 0
	commercial := 0
	lowCompetition := 0
	mediumCompetition := 0
	highVolume := 0
	mediumVolume := 0
	for _, k := range scored {
		if k.Priority >= 7 {
			highPriority++
		}
		if k.Trend == models.TrendRising {
			trending++
		}
		if k.CommercialValue >= 7 {
			commercial++
		}
		switch k.Competition {
		case models.CompetitionLow:
			lowCompetition++
		case models.CompetitionMedium:
			mediumCompetition++
		}
		switch k.SearchVolume {
		case models.VolumeHigh:
			highVolume++
		case models.VolumeMedium:
			mediumVolume++
		}
	}

	score += minFloat(25, float64(highPriority)*2+float64(trending)*1.5+float64(commercial)*1.5)

	titleWords := strings.Fields(strings.ToLower(title))
	score += minFloat(25, float64(matchingKeywords(scored, titleWords))*5)

	descWords := strings.Fields(strings.ToLower(description))
	score += minFloat(20, float64(matchingKeywords(scored, descWords))*3)

	score += minFloat(15, float64(lowCompetition)*2+float64(mediumCompetition))
	score += minFloat(15, float64(highVolume)*2+float64(mediumVolume))

	return clampPercent(int(score + 0.5))
}

func matchingKeywords(scored []models.ScoredKeyword, words []string) int {
	count := 0
	for _, k := range scored {
		kwLower := strings.ToLower(k.Keyword)
		for _, w := range words {
			if strings.Contains(kwLower, w) {
				count++
				break
			}
		}
	}
	return count
}

func recommendations(a Analysis) []string {
	var recs []string

	if a.SeoScore < 50 {
		recs = append(recs, "Consider using more high-priority keywords in your title and description")
	}
	if len(a.TrendingKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Include trending keywords: %s", strings.Join(headStrings(a.TrendingKeywords, 3), ", ")))
	}
	if len(a.LowCompetitionKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Target low-competition keywords for better ranking: %s", strings.Join(headStrings(a.LowCompetitionKeywords, 3), ", ")))
	}
	if len(a.LongTailKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Use long-tail keywords for specific searches: %s", strings.Join(headStrings(a.LongTailKeywords, 2), ", ")))
	}

	recs = append(recs, a.CompetitorInsights.RecommendedFocus)
	if len(a.CompetitorInsights.MarketGaps) > 0 {
		recs = append(recs, fmt.Sprintf("Explore market gaps: %s", strings.Join(headStrings(a.CompetitorInsights.MarketGaps, 2), ", ")))
	}

	return recs
}

func headStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
