package export

import "strings"

// categoryMapping maps a free-text category to a platform vocabulary
// entry. Order matters: the substring pass is first-match-wins.
type categoryMapping struct {
	pattern string
	value   string
}

// mapCategory resolves a free-text category against a platform table:
// exact match first, then bidirectional case-insensitive substring
// match, then the platform default.
func mapCategory(table []categoryMapping, category, fallback string) string {
	for _, m := range table {
		if m.pattern == category {
			return m.value
		}
	}

	lower := strings.ToLower(category)
	for _, m := range table {
		pattern := strings.ToLower(m.pattern)
		if strings.Contains(lower, pattern) || strings.Contains(pattern, lower) {
			return m.value
		}
	}

	return fallback
}

// shutterstockCategories maps to Shutterstock's approved category
// names.
var shutterstockCategories = []categoryMapping{
	{"Abstract", "Abstract"},
	{"Animals", "Animals/Wildlife"},
	{"Wildlife", "Animals/Wildlife"},
	{"Architecture", "Buildings/Landmarks"},
	{"Buildings", "Buildings/Landmarks"},
	{"Landmarks", "Buildings/Landmarks"},
	{"Arts", "Arts"},
	{"Art", "Arts"},
	{"Backgrounds", "Backgrounds/Textures"},
	{"Textures", "Backgrounds/Textures"},
	{"Beauty", "Beauty/Fashion"},
	{"Fashion", "Beauty/Fashion"},
	{"Business", "Business/Finance"},
	{"Finance", "Business/Finance"},
	{"Celebrities", "Celebrities"},
	{"Celebrity", "Celebrities"},
	{"Computers", "Technology"},
	{"Education", "Education"},
	{"Family", "People"},
	{"Food", "Food and drink"},
	{"Drink", "Food and drink"},
	{"Healthcare", "Healthcare/Medical"},
	{"Medical", "Healthcare/Medical"},
	{"Health", "Healthcare/Medical"},
	{"Holidays", "Holidays"},
	{"Holiday", "Holidays"},
	{"Industrial", "Industrial"},
	{"Industry", "Industrial"},
	{"Interiors", "Interiors"},
	{"Interior", "Interiors"},
	{"Landscapes", "Nature"},
	{"Lifestyle", "People"},
	{"Miscellaneous", "Miscellaneous"},
	{"Nature", "Nature"},
	{"Natural", "Nature"},
	{"Objects", "Objects"},
	{"Object", "Objects"},
	{"Parks", "Parks/Outdoor"},
	{"Outdoor", "Parks/Outdoor"},
	{"People", "People"},
	{"Person", "People"},
	{"Places", "Buildings/Landmarks"},
	{"Religion", "Religion"},
	{"Religious", "Religion"},
	{"Science", "Science"},
	{"Scientific", "Science"},
	{"Signs", "Signs/Symbols"},
	{"Symbols", "Signs/Symbols"},
	{"Sports", "Sports/Recreation"},
	{"Recreation", "Sports/Recreation"},
	{"Technology", "Technology"},
	{"Tech", "Technology"},
	{"Transportation", "Transportation"},
	{"Transport", "Transportation"},
	{"Travel", "Transportation"},
	{"Vintage", "Vintage"},
}

// adobeCategories maps to Adobe Stock's numeric category codes.
var adobeCategories = []categoryMapping{
	{"Animals", "1"},
	{"Animal", "1"},
	{"Wildlife", "1"},
	{"Buildings", "2"},
	{"Architecture", "2"},
	{"Building", "2"},
	{"Business", "3"},
	{"Finance", "3"},
	{"Drinks", "4"},
	{"Drink", "4"},
	{"Environment", "5"},
	{"Environmental", "5"},
	{"Nature", "5"},
	{"States of Mind", "6"},
	{"Mind", "6"},
	{"Mental", "6"},
	{"Emotion", "6"},
	{"Food", "7"},
	{"Graphic Resources", "8"},
	{"Graphic", "8"},
	{"Design", "8"},
	{"Graphics", "8"},
	{"Hobbies and Leisure", "9"},
	{"Hobbies", "9"},
	{"Leisure", "9"},
	{"Hobby", "9"},
	{"Industry", "10"},
	{"Industrial", "10"},
	{"Landscapes", "11"},
	{"Landscape", "11"},
	{"Lifestyle", "12"},
	{"Life", "12"},
	{"People", "13"},
	{"Person", "13"},
	{"Human", "13"},
	{"Plants and Flowers", "14"},
	{"Plants", "14"},
	{"Flowers", "14"},
	{"Plant", "14"},
	{"Flower", "14"},
	{"Culture and Religion", "15"},
	{"Culture", "15"},
	{"Religion", "15"},
	{"Religious", "15"},
	{"Cultural", "15"},
	{"Science", "16"},
	{"Scientific", "16"},
	{"Social Issues", "17"},
	{"Social", "17"},
	{"Society", "17"},
	{"Sports", "18"},
	{"Sport", "18"},
	{"Recreation", "18"},
	{"Technology", "19"},
	{"Tech", "19"},
	{"Transport", "20"},
	{"Transportation", "20"},
	{"Vehicle", "20"},
	{"Travel", "21"},
	{"Tourism", "21"},
	{"Vacation", "21"},
}
