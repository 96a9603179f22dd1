package keywords

import (
	"math/rand"
	"strings"

	"github.com/microstock-labs/stockmeta/internal/models"
)

// categoryKeywords maps a market segment to terms that carry high search
// volume and buyer intent on stock platforms. A keyword matching more
// than one segment accumulates each segment's boost.
var categoryKeywords = []struct {
	Name  string
	Terms []string
}{
	{"business", []string{"business", "office", "meeting", "teamwork", "corporate", "professional", "startup", "entrepreneur"}},
	{"technology", []string{"technology", "computer", "software", "innovation", "data", "network", "artificial", "intelligence"}},
	{"lifestyle", []string{"lifestyle", "wellness", "fitness", "travel", "family", "leisure", "home", "relaxation"}},
	{"finance", []string{"finance", "money", "investment", "banking", "economy", "growth", "market", "savings"}},
	{"medical", []string{"medical", "health", "healthcare", "doctor", "hospital", "medicine", "clinic", "therapy"}},
	{"education", []string{"education", "school", "learning", "student", "teacher", "university", "knowledge", "training"}},
}

// TrendingKeyword is one entry of the curated list of currently popular
// stock-photo search terms.
type TrendingKeyword struct {
	Keyword   string
	Relevance int // 1-10
	Volume    int // 0-100 relative search volume
}

// TrendingKeywords is hand-curated and revisited periodically; volume is
// a relative signal, not a measured search count.
var TrendingKeywords = []TrendingKeyword{
	{"ai technology", 10, 95},
	{"digital transformation", 9, 88},
	{"remote work", 9, 90},
	{"sustainability", 9, 92},
	{"virtual reality", 8, 84},
	{"cryptocurrency", 7, 80},
	{"mental health", 8, 87},
	{"eco friendly", 8, 82},
	{"electric vehicle", 8, 89},
	{"renewable energy", 8, 86},
}

// industryTerms bump keywords that signal commercial licensing intent.
var industryTerms = []string{"professional", "business", "corporate", "commercial", "industry"}

// Analyzer assigns heuristic SEO metrics to keywords. The zero value is
// not usable; construct with NewAnalyzer. The rand source only feeds the
// jittered scoring path and may be seeded for reproducible tests.
type Analyzer struct {
	rng *rand.Rand
}

func NewAnalyzer(rng *rand.Rand) *Analyzer {
	return &Analyzer{rng: rng}
}

// Score computes deterministic metrics for one keyword in the context of
// an image category. visibleInImage marks keywords confirmed present in
// the image content itself.
func (a *Analyzer) Score(keyword, category string, visibleInImage bool) models.ScoredKeyword {
	lower := strings.ToLower(keyword)

	scored := models.ScoredKeyword{
		Keyword:         keyword,
		Priority:        5,
		SearchVolume:    models.VolumeMedium,
		Trend:           models.TrendStable,
		Competition:     models.CompetitionMedium,
		CommercialValue: 5,
		Category:        models.KeywordSecondary,
	}

	if visibleInImage {
		scored.Priority += 3
		scored.Category = models.KeywordPrimary
	}

	// Cumulative: a keyword sitting in several high-value segments is
	// worth more than one sitting in a single segment.
	for _, segment := range categoryKeywords {
		if matchesAny(lower, segment.Terms) {
			scored.Priority += 2
			scored.CommercialValue += 2
			scored.SearchVolume = models.VolumeHigh
			scored.Competition = models.CompetitionHigh
		}
	}

	if trend, ok := matchTrending(lower); ok {
		scored.Priority += 2
		scored.CommercialValue++
		scored.Category = models.KeywordTrend
		scored.Trend = models.TrendRising
		if trend.Volume > 85 {
			scored.SearchVolume = models.VolumeHigh
		} else {
			scored.SearchVolume = models.VolumeMedium
		}
	}

	if len(strings.Fields(keyword)) >= 3 {
		scored.Category = models.KeywordLongTail
		scored.Competition = models.CompetitionLow
		scored.CommercialValue++
	}

	for _, term := range industryTerms {
		if strings.Contains(lower, term) {
			scored.Priority++
			scored.CommercialValue++
			break
		}
	}

	scored.Priority = clampScore(scored.Priority)
	scored.CommercialValue = clampScore(scored.CommercialValue)
	return scored
}

// ScoreJittered is Score with ±1 random variation on priority and
// commercial value, so batches of similar keywords do not land on flat
// identical metrics.
func (a *Analyzer) ScoreJittered(keyword, category string, visibleInImage bool) models.ScoredKeyword {
	scored := a.Score(keyword, category, visibleInImage)
	scored.Priority = clampScore(scored.Priority + a.rng.Intn(3) - 1)
	scored.CommercialValue = clampScore(scored.CommercialValue + a.rng.Intn(3) - 1)
	return scored
}

// AnalyzeAll scores a whole keyword list with jitter applied, for the
// metrics dashboard surface.
func (a *Analyzer) AnalyzeAll(keywords []string, category string) []models.ScoredKeyword {
	scored := make([]models.ScoredKeyword, 0, len(keywords))
	for _, kw := range keywords {
		scored = append(scored, a.ScoreJittered(kw, category, false))
	}
	return scored
}

// MatchesHighValueSegment reports whether the keyword sits in any of the
// high-value category tables.
func MatchesHighValueSegment(keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, segment := range categoryKeywords {
		if matchesAny(lower, segment.Terms) {
			return true
		}
	}
	return false
}

// MatchesTrending reports whether the keyword fuzzily matches an entry of
// the curated trending list.
func MatchesTrending(keyword string) (TrendingKeyword, bool) {
	return matchTrending(strings.ToLower(keyword))
}

func matchesAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) || strings.Contains(term, lower) {
			return true
		}
	}
	return false
}

func matchTrending(lower string) (TrendingKeyword, bool) {
	for _, trend := range TrendingKeywords {
		if strings.Contains(lower, trend.Keyword) || strings.Contains(trend.Keyword, lower) {
			return trend, true
		}
	}
	return TrendingKeyword{}, false
}

func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
