package seo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/models"
)

const (
	minTitleWords  = 6
	maxTitleWords  = 12
	minDescription = 150
	maxDescription = 200
)

// Optimizer reorders, enriches and rescores a metadata result for
// search ranking on stock platforms.
type Optimizer struct {
	analyzer *keywords.Analyzer
}

func New(analyzer *keywords.Analyzer) *Optimizer {
	return &Optimizer{analyzer: analyzer}
}

// Optimize runs the full SEO pipeline over one metadata result.
// imageContent carries optional hint strings describing what is visible
// in the image; keywords found in those hints are scored as primary.
func (o *Optimizer) Optimize(meta models.MetadataResult, imageContent []string) models.SeoOptimizedResult {
	scored := o.scoreAll(meta.Keywords, meta.Category, imageContent)

	// Stable: ties keep the AI's original relevance order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Priority > scored[j].Priority
	})

	ordered := make([]string, len(scored))
	for i, sk := range scored {
		ordered[i] = sk.Keyword
	}

	trendAdditions := relevantTrends(meta.Category, ordered)

	final := ordered
	if len(final) > keywords.MaxKeywords-2 {
		final = final[:keywords.MaxKeywords-2]
	}
	final = append(append([]string{}, final...), trendAdditions...)
	if len(final) > keywords.MaxKeywords {
		final = final[:keywords.MaxKeywords]
	}

	// Second pass: the candidate pool changed, so primary/trend
	// classification is recomputed from scratch.
	finalScored := o.scoreAll(final, meta.Category, imageContent)

	title := o.optimizeTitle(meta.Title, topSlice(finalScored, 0, 5))
	altTitles := make([]string, 0, len(meta.AlternativeTitles))
	for _, alt := range meta.AlternativeTitles {
		altTitles = append(altTitles, o.optimizeTitle(alt, topSlice(finalScored, 5, 10)))
	}
	description := o.optimizeDescription(meta.Description, topSlice(finalScored, 0, 8))

	metrics := calculateSeoMetrics(title, description, final)
	suggestions := generateSuggestions(meta.Category, metrics, trendAdditions)

	return models.SeoOptimizedResult{
		Title:                   title,
		AlternativeTitles:       altTitles,
		Description:             description,
		Keywords:                final,
		SeoKeywords:             finalScored,
		Category:                meta.Category,
		SeoMetrics:              metrics,
		OptimizationSuggestions: suggestions,
	}
}

func (o *Optimizer) scoreAll(kws []string, category string, imageContent []string) []models.ScoredKeyword {
	scored := make([]models.ScoredKeyword, 0, len(kws))
	for _, kw := range kws {
		scored = append(scored, o.analyzer.Score(kw, category, visibleIn(imageContent, kw)))
	}
	return scored
}

func visibleIn(imageContent []string, keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, content := range imageContent {
		if strings.Contains(strings.ToLower(content), lower) {
			return true
		}
	}
	return false
}

// categoryTrends maps category patterns to the subset of trending
// keywords worth injecting; first match wins.
var categoryTrends = []struct {
	Patterns []string
	Trends   []string
}{
	{[]string{"business", "corporate"}, []string{"ai technology", "digital transformation", "remote work", "sustainability"}},
	{[]string{"technology"}, []string{"ai technology", "virtual reality", "cryptocurrency", "digital transformation"}},
	{[]string{"lifestyle", "health"}, []string{"mental health", "sustainability", "eco friendly"}},
	{[]string{"transport", "vehicle"}, []string{"electric vehicle", "renewable energy", "sustainability"}},
}

// relevantTrends picks the category's trending injections: the allowed
// subset is walked in trending-table order, cut to the top 2, and only
// then filtered against what the list already carries. A present top-2
// trend therefore shrinks the injection count rather than promoting the
// next candidate.
func relevantTrends(category string, existing []string) []string {
	categoryLower := strings.ToLower(category)

	var allowed map[string]struct{}
	for _, ct := range categoryTrends {
		for _, pattern := range ct.Patterns {
			if strings.Contains(categoryLower, pattern) {
				allowed = make(map[string]struct{}, len(ct.Trends))
				for _, trend := range ct.Trends {
					allowed[trend] = struct{}{}
				}
				break
			}
		}
		if allowed != nil {
			break
		}
	}

	candidates := make([]string, 0, 2)
	for _, trend := range keywords.TrendingKeywords {
		if _, ok := allowed[trend.Keyword]; !ok {
			continue
		}
		candidates = append(candidates, trend.Keyword)
		if len(candidates) == 2 {
			break
		}
	}

	present := make(map[string]struct{}, len(existing))
	for _, kw := range existing {
		present[strings.ToLower(kw)] = struct{}{}
	}

	additions := make([]string, 0, len(candidates))
	for _, trend := range candidates {
		if _, ok := present[trend]; !ok {
			additions = append(additions, trend)
		}
	}
	return additions
}

// optimizeTitle nudges the title into the 6-12 word sweet spot: short
// titles gain up to 2 missing candidate keywords after a hyphen, long
// titles are cut at 12 words.
func (o *Optimizer) optimizeTitle(title string, candidates []models.ScoredKeyword) string {
	words := strings.Fields(title)
	switch {
	case len(words) < minTitleWords:
		missing := missingKeywords(title, candidates, 2)
		if len(missing) > 0 {
			return fmt.Sprintf("%s - %s", title, strings.Join(missing, ", "))
		}
	case len(words) > maxTitleWords:
		return strings.Join(words[:maxTitleWords], " ")
	}
	return title
}

// optimizeDescription pushes the description toward the 150-200
// character window stock platforms favor.
func (o *Optimizer) optimizeDescription(description string, candidates []models.ScoredKeyword) string {
	runes := []rune(description)
	switch {
	case len(runes) < minDescription:
		missing := missingKeywords(description, candidates, 3)
		if len(missing) > 0 {
			return fmt.Sprintf("%s Features %s.", description, strings.Join(missing, ", "))
		}
	case len(runes) > maxDescription:
		return string(runes[:maxDescription-3]) + "..."
	}
	return description
}

func missingKeywords(text string, candidates []models.ScoredKeyword, limit int) []string {
	textLower := strings.ToLower(text)
	missing := make([]string, 0, limit)
	for _, sk := range candidates {
		if strings.Contains(textLower, strings.ToLower(sk.Keyword)) {
			continue
		}
		missing = append(missing, sk.Keyword)
		if len(missing) == limit {
			break
		}
	}
	return missing
}

func topSlice(scored []models.ScoredKeyword, from, to int) []models.ScoredKeyword {
	if from > len(scored) {
		from = len(scored)
	}
	if to > len(scored) {
		to = len(scored)
	}
	return scored[from:to]
}
