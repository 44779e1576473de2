package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  DDCategory
		ok    bool
	}{
		{"legal", CategoryLegal, true},
		{"Financial", CategoryFinancial, true},
		{" technical ", CategoryTechnical, true},
		{"market", CategoryMarket, true},
		{"team", CategoryTeam, true},
		{"vibes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoriesComplete(t *testing.T) {
	if len(Categories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(Categories))
	}
}
