package metadata

import (
	"regexp"
	"strings"

	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/models"
)

// Placeholder values used when the model omits a field; a successful
// generation never returns empty metadata.
const (
	fallbackTitle       = "Generated Title"
	fallbackDescription = "Generated description"
	fallbackCategory    = "General"
)

var fallbackKeywords = []string{"generated", "metadata"}

var (
	titleRe       = regexp.MustCompile(`^TITLE[-:]\s*`)
	altTitle1Re   = regexp.MustCompile(`^ALT_TITLE_1[-:]\s*`)
	altTitle2Re   = regexp.MustCompile(`^ALT_TITLE_2[-:]\s*`)
	descriptionRe = regexp.MustCompile(`^DESCRIPTION[-:]\s*`)
	categoryRe    = regexp.MustCompile(`^CATEGORY[-:]\s*`)
	keywordsRe    = regexp.MustCompile(`^KEYWORDS[-:]\s*`)
)

// parseMetadata scans the model's line-labeled response. Unrecognized
// lines are ignored; missing fields fall back to placeholders rather
// than failing the request.
func parseMetadata(text string) models.MetadataResult {
	var result models.MetadataResult
	altTitles := make([]string, 2)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case titleRe.MatchString(line):
			result.Title = keywords.CleanTitle(titleRe.ReplaceAllString(line, ""))
		case altTitle1Re.MatchString(line):
			altTitles[0] = keywords.CleanTitle(altTitle1Re.ReplaceAllString(line, ""))
		case altTitle2Re.MatchString(line):
			altTitles[1] = keywords.CleanTitle(altTitle2Re.ReplaceAllString(line, ""))
		case descriptionRe.MatchString(line):
			result.Description = keywords.CleanDescription(descriptionRe.ReplaceAllString(line, ""))
		case categoryRe.MatchString(line):
			result.Category = strings.TrimSpace(categoryRe.ReplaceAllString(line, ""))
		case keywordsRe.MatchString(line):
			raw := strings.Split(keywordsRe.ReplaceAllString(line, ""), ",")
			for i := range raw {
				raw[i] = strings.TrimSpace(raw[i])
			}
			result.Keywords = keywords.Clean(raw)
		}
	}

	for _, alt := range altTitles {
		if alt != "" {
			result.AlternativeTitles = append(result.AlternativeTitles, alt)
		}
	}

	if result.Title == "" {
		result.Title = fallbackTitle
	}
	if result.Description == "" {
		result.Description = fallbackDescription
	}
	if len(result.Keywords) == 0 {
		result.Keywords = append([]string{}, fallbackKeywords...)
	}
	if result.Category == "" {
		result.Category = fallbackCategory
	}

	return result
}
