package keywords

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "strips punctuation and trims",
			in:   []string{"  coffee!  ", "lap-top", "c@fe"},
			want: []string{"coffee", "laptop", "cfe"},
		},
		{
			name: "drops empty results",
			in:   []string{"***", "!!!", "city"},
			want: []string{"city"},
		},
		{
			name: "removes stop words case-insensitively",
			in:   []string{"Photo", "BACKGROUND", "vector", "skyline"},
			want: []string{"skyline"},
		},
		{
			name: "first synonym group member wins",
			in:   []string{"graphics", "graphic", "icon", "icons"},
			want: []string{"graphics", "icon"},
		},
		{
			name: "business and corporate are one group",
			in:   []string{"corporate", "business"},
			want: []string{"corporate"},
		},
		{
			name: "naive plural duplicates dropped",
			in:   []string{"tree", "trees", "Flower", "flowers"},
			want: []string{"tree", "Flower"},
		},
		{
			name: "case-insensitive exact duplicates dropped",
			in:   []string{"Coffee", "coffee"},
			want: []string{"Coffee"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Clean(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanCapsAtFifty(t *testing.T) {
	in := make([]string, 0, 80)
	for r := 'a'; r <= 'z'; r++ {
		for s := 'a'; s <= 'c'; s++ {
			in = append(in, string(r)+string(s)+"word")
		}
	}

	got := Clean(in)
	if len(got) != MaxKeywords {
		t.Errorf("expected %d keywords, got %d", MaxKeywords, len(got))
	}
	// Relative order preserved
	if got[0] != in[0] {
		t.Errorf("expected first keyword %q, got %q", in[0], got[0])
	}
}

func TestCleanIdempotent(t *testing.T) {
	in := []string{"coffee shop", "graphics", "graphic", "trees", "tree", "skyline", "Photo", "c@fe!"}

	once := Clean(in)
	twice := Clean(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Clean is not idempotent: first %v, second %v", once, twice)
	}
}

func TestCleanUnique(t *testing.T) {
	in := []string{"City", "city", "cities", "citys", "town", "towns", "TOWN"}

	got := Clean(in)
	seen := map[string]bool{}
	for _, kw := range got {
		lower := strings.ToLower(kw)
		if seen[lower] {
			t.Errorf("duplicate keyword %q in %v", kw, got)
		}
		seen[lower] = true
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Modern Office - Team Meeting!", "Modern Office  Team Meeting"},
		{"Badges 1, 5, 10 \"Gold\"", "Badges 1, 5, 10 Gold"},
		{"@#$%", ""},
	}

	for _, tt := range tests {
		if got := CleanTitle(tt.in); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanDescription(t *testing.T) {
	in := `A "premium" set of badges @ 50% off, great for <web> + print = value`
	want := `A premium set of badges  50 off, great for web  print  value`
	if got := CleanDescription(in); got != want {
		t.Errorf("CleanDescription = %q, want %q", got, want)
	}
}
