package timeline

import (
	"testing"

	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

func TestTicks_IntervalAndEndpoints(t *testing.T) {
	// High threshold so no compression interferes with the tick logic.
	opts := Options{BaseSpacing: 10, PerItemSpacing: 5, EmptyYearThreshold: 100, EmptySegmentSpacing: 7}
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19600000"},
		{ID: "b", Date: "19800000"},
	}
	m := Compress(schemes, opts)

	ticks := Ticks(m, 10, 2)

	// 1960 (min) and 1980 (max) have data; 1970 is an interval year but has
	// no scheme within two years, so it is suppressed.
	want := []int{1960, 1980}
	if len(ticks) != len(want) {
		t.Fatalf("Ticks() returned %d ticks %v, want years %v", len(ticks), tickYears(ticks), want)
	}
	for i, y := range want {
		if ticks[i].Year != y {
			t.Errorf("ticks[%d].Year = %d, want %d", i, ticks[i].Year, y)
		}
		if ticks[i].Y != m.Offsets[y] {
			t.Errorf("ticks[%d].Y = %v, want %v", i, ticks[i].Y, m.Offsets[y])
		}
	}
	if ticks[0].Label != "1960" {
		t.Errorf("ticks[0].Label = %q, want %q", ticks[0].Label, "1960")
	}
}

func TestTicks_MinMaxAlwaysCandidates(t *testing.T) {
	opts := Options{BaseSpacing: 10, PerItemSpacing: 5, EmptyYearThreshold: 100, EmptySegmentSpacing: 7}
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19630000"},
		{ID: "b", Date: "19670000"},
	}
	m := Compress(schemes, opts)

	ticks := Ticks(m, 10, 2)
	want := []int{1963, 1967}
	if got := tickYears(ticks); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Ticks() years = %v, want %v", got, want)
	}
}

func TestTicks_EmptyMap(t *testing.T) {
	if ticks := Ticks(OffsetMap{}, 10, 2); ticks != nil {
		t.Errorf("Ticks(empty) = %v, want nil", ticks)
	}
}

func tickYears(ticks []Tick) []int {
	years := make([]int, len(ticks))
	for i, tk := range ticks {
		years[i] = tk.Year
	}
	return years
}
