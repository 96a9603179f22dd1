// Package export renders metadata batches as the CSV dialects the
// microstock platforms ingest. Each platform is a table entry: field
// set, separator, quoting rule, keyword cap and filename convention
// all differ, the row-building loop does not.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/microstock-labs/stockmeta/internal/models"
)

// Platform describes one site's CSV dialect.
type Platform struct {
	Name                 string
	DisplayName          string
	TitleMaxLength       int
	DescriptionMaxLength int
	KeywordMax           int
	KeywordJoin          string
	Separator            string
	Headers              []string

	// QuoteAll wraps every field in quotes; otherwise only fields
	// containing the separator or a quote character are wrapped.
	QuoteAll bool

	row func(r rowInput) []string
}

// rowInput is one result after the platform-independent shaping:
// title selected and truncated, description truncated, keywords
// capped and joined.
type rowInput struct {
	filename    string
	title       string
	description string
	keywords    string
	category    string
}

var extensionRe = regexp.MustCompile(`\.[^/.]+$`)

var shutterstockFilenameRe = regexp.MustCompile(`[/\\\r\n\t]`)

var platforms = []Platform{
	{
		Name:                 "shutterstock",
		DisplayName:          "Shutterstock",
		TitleMaxLength:       200,
		DescriptionMaxLength: 200,
		KeywordMax:           50,
		KeywordJoin:          ", ",
		Separator:            ",",
		Headers:              []string{"Filename", "Description", "Keywords", "Categories"},
		QuoteAll:             true,
		row: func(r rowInput) []string {
			name := rewriteExtension(r.filename, ".eps")
			name = shutterstockFilenameRe.ReplaceAllString(name, "-")
			return []string{name, r.description, r.keywords, mapCategory(shutterstockCategories, r.category, "Abstract")}
		},
	},
	{
		Name:                 "adobe-stock",
		DisplayName:          "Adobe Stock",
		TitleMaxLength:       200,
		DescriptionMaxLength: 200,
		KeywordMax:           49,
		KeywordJoin:          ", ",
		Separator:            ",",
		Headers:              []string{"Filename", "Title", "Keywords", "Category", "Releases"},
		QuoteAll:             true,
		row: func(r rowInput) []string {
			// Releases stays empty: no recognizable people or property.
			return []string{rewriteExtension(r.filename, ".eps"), r.title, r.keywords, mapCategory(adobeCategories, r.category, "8"), ""}
		},
	},
	{
		Name:                 "freepik",
		DisplayName:          "Freepik",
		TitleMaxLength:       100,
		DescriptionMaxLength: 300,
		KeywordMax:           20,
		KeywordJoin:          ",",
		Separator:            ";",
		Headers:              []string{"filename", "title", "keywords", "prompt", "model"},
		QuoteAll:             true,
		row: func(r rowInput) []string {
			// Freepik wants the description in the prompt column; the
			// model column is left for manual entry.
			return []string{rewriteExtension(r.filename, ""), r.title, r.keywords, r.description, ""}
		},
	},
	{
		Name:                 "vecteezy",
		DisplayName:          "Vecteezy",
		TitleMaxLength:       255,
		DescriptionMaxLength: 1000,
		KeywordMax:           49,
		KeywordJoin:          ", ",
		Separator:            ",",
		Headers:              []string{"Filename", "Title", "Description", "Keywords", "Category"},
		QuoteAll:             false,
		row: func(r rowInput) []string {
			return []string{rewriteExtension(r.filename, ".jpg"), r.title, r.description, r.keywords, r.category}
		},
	},
}

// Platforms returns the supported platform specs in display order.
func Platforms() []Platform {
	return platforms
}

// ByName resolves a platform spec by its URL-safe name.
func ByName(name string) (Platform, error) {
	for _, p := range platforms {
		if p.Name == name {
			return p, nil
		}
	}
	return Platform{}, fmt.Errorf("unknown platform %q", name)
}

// Format renders the results as the platform's CSV dialect, prefixed
// with a byte-order mark for spreadsheet compatibility. It never fails
// on malformed input: unmapped categories fall back to the platform
// default and missing optional fields to their defined defaults.
func (p Platform) Format(results []models.ExportableResult) string {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(p.Headers, p.Separator))

	for _, r := range results {
		in := rowInput{
			filename:    r.Filename,
			title:       truncate(p.selectTitle(r), p.TitleMaxLength),
			description: truncate(r.Description, p.DescriptionMaxLength),
			keywords:    p.joinKeywords(r),
			category:    r.Category,
		}

		fields := p.row(in)
		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(p.Separator)
			}
			b.WriteString(p.quote(f))
		}
	}

	return b.String()
}

// Filename suggests the download name for an export generated now.
func (p Platform) Filename(now time.Time) string {
	return fmt.Sprintf("%s-metadata-%s.csv", p.Name, now.UTC().Format("2006-01-02"))
}

// selectTitle resolves the user's title choice across the primary and
// alternative titles, falling back to the primary when the index is
// out of range.
func (p Platform) selectTitle(r models.ExportableResult) string {
	all := append([]string{r.Title}, r.AlternativeTitles...)
	if r.SelectedTitleIndex >= 0 && r.SelectedTitleIndex < len(all) && all[r.SelectedTitleIndex] != "" {
		return all[r.SelectedTitleIndex]
	}
	return r.Title
}

// joinKeywords prefers the curated topKeywords list when present and
// caps at the platform limit.
func (p Platform) joinKeywords(r models.ExportableResult) string {
	source := r.Keywords
	if len(r.TopKeywords) > 0 {
		source = r.TopKeywords
	}
	if len(source) > p.KeywordMax {
		source = source[:p.KeywordMax]
	}
	return strings.Join(source, p.KeywordJoin)
}

func (p Platform) quote(field string) string {
	if !p.QuoteAll && !strings.Contains(field, p.Separator) && !strings.Contains(field, `"`) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// truncate cuts s three characters short of max and appends an
// ellipsis when it exceeds the platform limit.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// rewriteExtension swaps the filename extension for the platform's
// expected one; an empty ext strips the extension entirely.
func rewriteExtension(name, ext string) string {
	return extensionRe.ReplaceAllString(name, "") + ext
}
