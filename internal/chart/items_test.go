package chart

import (
	"testing"
)

func TestParseItems(t *testing.T) {
	items, err := ParseItems("ff0000 1\n#00ff00: 2.5\n\n# comment\n0000ff=3, abc 4")
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	want := []struct {
		id    string
		value float64
	}{{"ff0000", 1}, {"00ff00", 2.5}, {"0000ff", 3}, {"abc", 4}}
	if len(items) != len(want) {
		t.Fatalf("len %d, want %d: %+v", len(items), len(want), items)
	}
	for i, w := range want {
		if items[i].ID != w.id || items[i].Value != w.value {
			t.Errorf("item %d = %+v, want %s %v", i, items[i], w.id, w.value)
		}
	}
}

func TestParseItems_Errors(t *testing.T) {
	for _, text := range []string{"", "  \n ", "ff0000", "ff0000 one", "a b c"} {
		if _, err := ParseItems(text); err == nil {
			t.Errorf("ParseItems(%q) should fail", text)
		}
	}
}

func TestFormatItems_RoundTrip(t *testing.T) {
	text := FormatItems(DefaultItems)
	items, err := ParseItems(text)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if len(items) != len(DefaultItems) {
		t.Fatalf("len %d, want %d", len(items), len(DefaultItems))
	}
	for i := range items {
		if items[i] != DefaultItems[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], DefaultItems[i])
		}
	}
}
