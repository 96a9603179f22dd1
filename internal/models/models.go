package models

import "time"

// MetadataResult is one image's AI-generated metadata.
type MetadataResult struct {
	Title             string   `json:"title"`
	AlternativeTitles []string `json:"alternative_titles,omitempty"`
	Description       string   `json:"description"`
	Keywords          []string `json:"keywords"`
	Category          string   `json:"category"`
}

// SearchVolume is a heuristic search-volume tier for a keyword.
type SearchVolume string

const (
	VolumeHigh   SearchVolume = "high"
	VolumeMedium SearchVolume = "medium"
	VolumeLow    SearchVolume = "low"
)

// Trend classifies a keyword against the curated trending list.
type Trend string

const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Competition is a heuristic competition tier for a keyword.
type Competition string

const (
	CompetitionHigh   Competition = "high"
	CompetitionMedium Competition = "medium"
	CompetitionLow    Competition = "low"
)

// KeywordCategory classifies a keyword's strategic role.
type KeywordCategory string

const (
	KeywordPrimary   KeywordCategory = "primary"
	KeywordSecondary KeywordCategory = "secondary"
	KeywordLongTail  KeywordCategory = "long-tail"
	KeywordTrend     KeywordCategory = "trend"
)

// ScoredKeyword is a keyword annotated with heuristic SEO metrics.
// It is a derived view of its source keyword, never stored on its own.
type ScoredKeyword struct {
	Keyword         string          `json:"keyword"`
	Priority        int             `json:"priority"`         // 1-10
	SearchVolume    SearchVolume    `json:"search_volume"`
	Trend           Trend           `json:"trend"`
	Competition     Competition     `json:"competition"`
	CommercialValue int             `json:"commercial_value"` // 1-10
	Category        KeywordCategory `json:"category,omitempty"`
}

// SeoMetrics holds 0-100 heuristic scores for one optimized result.
type SeoMetrics struct {
	TitleScore          int     `json:"title_score"`
	DescriptionScore    int     `json:"description_score"`
	KeywordDensity      float64 `json:"keyword_density"`
	Readability         int     `json:"readability"`
	CompetitorAlignment int     `json:"competitor_alignment"`
	TrendRelevance      int     `json:"trend_relevance"`
}

// SeoOptimizedResult is the final exported unit for one image.
// Keywords and SeoKeywords are index-aligned 1:1 and capped at 50.
type SeoOptimizedResult struct {
	Title                   string          `json:"title"`
	AlternativeTitles       []string        `json:"alternative_titles,omitempty"`
	Description             string          `json:"description"`
	Keywords                []string        `json:"keywords"`
	SeoKeywords             []ScoredKeyword `json:"seo_keywords"`
	Category                string          `json:"category"`
	SeoMetrics              SeoMetrics      `json:"seo_metrics"`
	OptimizationSuggestions []string        `json:"optimization_suggestions"`
}

// ExportableResult is one row of a platform CSV export.
type ExportableResult struct {
	Filename           string   `json:"filename"`
	Title              string   `json:"title"`
	AlternativeTitles  []string `json:"alternative_titles,omitempty"`
	Description        string   `json:"description"`
	Keywords           []string `json:"keywords"`
	TopKeywords        []string `json:"top_keywords,omitempty"`
	Category           string   `json:"category"`
	SelectedTitleIndex int      `json:"selected_title_index,omitempty"`
}

// BatchImage is one uploaded image inside a batch session.
type BatchImage struct {
	ID       string          `json:"id"`
	Filename string          `json:"filename"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Size     int             `json:"size"`
	Metadata *MetadataResult `json:"metadata,omitempty"`
	Data     []byte          `json:"-"`
}

// BatchSession is one browser upload batch and its generated results.
type BatchSession struct {
	ID        string       `json:"id"`
	Images    []BatchImage `json:"images"`
	CreatedAt time.Time    `json:"created_at"`
}
