package keywords

import (
	"math/rand"
	"testing"

	"github.com/microstock-labs/stockmeta/internal/models"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(rand.New(rand.NewSource(1)))
}

func TestScoreBaseline(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("skyline", "General", false)

	if got.Priority != 5 || got.CommercialValue != 5 {
		t.Errorf("baseline scores = %d/%d, want 5/5", got.Priority, got.CommercialValue)
	}
	if got.SearchVolume != models.VolumeMedium || got.Competition != models.CompetitionMedium {
		t.Errorf("baseline tiers = %s/%s, want medium/medium", got.SearchVolume, got.Competition)
	}
	if got.Category != models.KeywordSecondary {
		t.Errorf("baseline category = %s, want secondary", got.Category)
	}
}

func TestScoreVisibleInImage(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("skyline", "General", true)

	if got.Priority != 8 {
		t.Errorf("visible keyword priority = %d, want 8", got.Priority)
	}
	if got.Category != models.KeywordPrimary {
		t.Errorf("visible keyword category = %s, want primary", got.Category)
	}
}

func TestScoreCategoryMatchesCompound(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Score("healthcare technology innovation", "General", false)

	// medical (+2/+2) and technology (+2/+2) both match; three tokens
	// makes it long-tail (+1 commercial, low competition).
	if got.Priority < 9 {
		t.Errorf("compound category priority = %d, want >= 9", got.Priority)
	}
	if got.CommercialValue != 10 {
		t.Errorf("compound commercial value = %d, want clamped 10", got.CommercialValue)
	}
	if got.Competition != models.CompetitionLow {
		t.Errorf("long-tail competition = %s, want low", got.Competition)
	}
}

func TestScoreTrendingMatch(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("remote work", "General", false)

	if got.Category != models.KeywordTrend {
		t.Errorf("trending category = %s, want trend", got.Category)
	}
	if got.Trend != models.TrendRising {
		t.Errorf("trend tier = %s, want rising", got.Trend)
	}
	// remote work volume 90 > 85
	if got.SearchVolume != models.VolumeHigh {
		t.Errorf("search volume = %s, want high", got.SearchVolume)
	}
}

func TestScoreTrendingLowVolume(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("cryptocurrency", "General", false)

	// cryptocurrency volume 80 <= 85
	if got.SearchVolume != models.VolumeMedium {
		t.Errorf("search volume = %s, want medium", got.SearchVolume)
	}
}

func TestScoreLongTail(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("city skyline at dusk", "General", false)

	if got.Category != models.KeywordLongTail {
		t.Errorf("category = %s, want long-tail", got.Category)
	}
	if got.Competition != models.CompetitionLow {
		t.Errorf("competition = %s, want low", got.Competition)
	}
	if got.CommercialValue != 6 {
		t.Errorf("commercial value = %d, want 6", got.CommercialValue)
	}
}

func TestScoreIndustryTerm(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Score("commercial kitchen", "General", false)

	if got.Priority != 6 {
		t.Errorf("industry term priority = %d, want 6", got.Priority)
	}
	if got.CommercialValue != 6 {
		t.Errorf("industry term commercial value = %d, want 6", got.CommercialValue)
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := newTestAnalyzer()
	first := a.Score("business meeting", "Business", true)
	second := a.Score("business meeting", "Business", true)
	if first != second {
		t.Errorf("Score is not deterministic: %+v vs %+v", first, second)
	}
}

func TestScoreBounds(t *testing.T) {
	a := newTestAnalyzer()
	inputs := []string{
		"business professional corporate technology",
		"artificial intelligence",
		"x",
		"sustainability",
		"medical healthcare doctor hospital",
	}

	for _, kw := range inputs {
		for _, visible := range []bool{true, false} {
			got := a.Score(kw, "Business", visible)
			if got.Priority < 1 || got.Priority > 10 {
				t.Errorf("Score(%q) priority %d out of [1,10]", kw, got.Priority)
			}
			if got.CommercialValue < 1 || got.CommercialValue > 10 {
				t.Errorf("Score(%q) commercial value %d out of [1,10]", kw, got.CommercialValue)
			}
		}
	}
}

func TestScoreJitteredBounds(t *testing.T) {
	a := newTestAnalyzer()
	base := a.Score("teamwork", "Business", false)

	for i := 0; i < 100; i++ {
		got := a.ScoreJittered("teamwork", "Business", false)
		if got.Priority < base.Priority-1 || got.Priority > base.Priority+1 {
			t.Fatalf("jittered priority %d outside ±1 of %d", got.Priority, base.Priority)
		}
		if got.Priority < 1 || got.Priority > 10 {
			t.Fatalf("jittered priority %d out of [1,10]", got.Priority)
		}
		if got.CommercialValue < 1 || got.CommercialValue > 10 {
			t.Fatalf("jittered commercial value %d out of [1,10]", got.CommercialValue)
		}
	}
}

func TestAnalyzeAll(t *testing.T) {
	a := newTestAnalyzer()
	keywords := []string{"business", "skyline", "remote work"}

	got := a.AnalyzeAll(keywords, "Business")
	if len(got) != len(keywords) {
		t.Fatalf("AnalyzeAll returned %d entries, want %d", len(got), len(keywords))
	}
	for i, sk := range got {
		if sk.Keyword != keywords[i] {
			t.Errorf("entry %d keyword = %q, want %q", i, sk.Keyword, keywords[i])
		}
	}
}
