package timeline

import (
	"testing"

	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

var testOpts = Options{
	BaseSpacing:         10,
	PerItemSpacing:      5,
	EmptyYearThreshold:  3,
	EmptySegmentSpacing: 7,
}

func TestCompress_EmptyInput(t *testing.T) {
	m := Compress(nil, testOpts)
	if m.Offsets != nil {
		t.Errorf("Compress(nil) Offsets = %v, want nil", m.Offsets)
	}
	if m.Height != 0 {
		t.Errorf("Compress(nil) Height = %v, want 0", m.Height)
	}
}

func TestCompress_LongEmptyRunCollapses(t *testing.T) {
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19700000"},
		{ID: "b", Date: "19700601"},
		{ID: "c", Date: "19760000"},
	}
	m := Compress(schemes, testOpts)

	if m.MinYear != 1970 || m.MaxYear != 1976 {
		t.Fatalf("year range = [%d, %d], want [1970, 1976]", m.MinYear, m.MaxYear)
	}

	// 1970 holds two schemes: band height 10 + 2*5 = 20.
	if got := m.Offsets[1970]; got != 0 {
		t.Errorf("Offsets[1970] = %v, want 0", got)
	}
	// 1971-1975 is a five-year empty run, over threshold: all years share
	// one level, and the whole run contributes exactly the segment spacing.
	for y := 1971; y <= 1975; y++ {
		if got := m.Offsets[y]; got != 20 {
			t.Errorf("Offsets[%d] = %v, want 20", y, got)
		}
		if !m.Compressed[y] {
			t.Errorf("Compressed[%d] = false, want true", y)
		}
	}
	if got := m.Offsets[1976]; got != 27 {
		t.Errorf("Offsets[1976] = %v, want 27", got)
	}
	if got := m.Height; got != 42 {
		t.Errorf("Height = %v, want 42", got)
	}
}

func TestCompress_ShortEmptyRunKeepsBaseSpacing(t *testing.T) {
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19700000"},
		{ID: "b", Date: "19730000"},
	}
	m := Compress(schemes, testOpts)

	// Two empty years, under the threshold of three: base spacing each.
	want := map[int]float64{1970: 0, 1971: 15, 1972: 25, 1973: 35}
	for y, w := range want {
		if got := m.Offsets[y]; got != w {
			t.Errorf("Offsets[%d] = %v, want %v", y, got, w)
		}
	}
	for y := 1970; y <= 1973; y++ {
		if m.Compressed[y] {
			t.Errorf("Compressed[%d] = true, want false", y)
		}
	}
	if got := m.Height; got != 50 {
		t.Errorf("Height = %v, want 50", got)
	}
}

func TestCompress_OffsetsNonDecreasing(t *testing.T) {
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19580000"},
		{ID: "b", Date: "19760000"},
		{ID: "c", Date: "19760000"},
		{ID: "d", Date: "19830000"},
		{ID: "e", Date: "20050000"},
	}
	m := Compress(schemes, testOpts)

	for y := m.MinYear; y < m.MaxYear; y++ {
		cur, next := m.Offsets[y], m.Offsets[y+1]
		if next < cur {
			t.Errorf("Offsets decreased from %d (%v) to %d (%v)", y, cur, y+1, next)
		}
		if m.Compressed[y] && m.Compressed[y+1] && next != cur {
			t.Errorf("compressed years %d and %d differ: %v vs %v", y, y+1, cur, next)
		}
		if m.Counts[y] > 0 && next == cur {
			t.Errorf("occupied year %d shares its offset with year %d", y, y+1)
		}
	}
}

func TestCompress_GapContributionIsExact(t *testing.T) {
	// For a run of N >= threshold empty years, total contributed height is
	// exactly EmptySegmentSpacing regardless of N.
	for _, gap := range []int{3, 5, 25} {
		schemes := []scheme.Scheme{
			{ID: "a", Date: "19700000"},
			{ID: "b", Date: formatYear(1971 + gap)},
		}
		m := Compress(schemes, testOpts)

		firstBand := testOpts.BaseSpacing + testOpts.PerItemSpacing
		contributed := m.Offsets[1971+gap] - firstBand
		if contributed != testOpts.EmptySegmentSpacing {
			t.Errorf("gap of %d years contributed %v, want %v", gap, contributed, testOpts.EmptySegmentSpacing)
		}
	}
}

func TestCompress_UndatedSchemesIgnored(t *testing.T) {
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19700000"},
		{ID: "nodate", Date: ""},
	}
	m := Compress(schemes, testOpts)
	if m.MinYear != 1970 || m.MaxYear != 1970 {
		t.Errorf("year range = [%d, %d], want [1970, 1970]", m.MinYear, m.MaxYear)
	}
	if got := m.Counts[1970]; got != 1 {
		t.Errorf("Counts[1970] = %d, want 1", got)
	}
}

func TestYearHeight(t *testing.T) {
	schemes := []scheme.Scheme{
		{ID: "a", Date: "19700000"},
		{ID: "b", Date: "19700601"},
		{ID: "c", Date: "19760000"},
	}
	m := Compress(schemes, testOpts)

	tests := []struct {
		year int
		want float64
	}{
		{1970, 20}, // occupied, two schemes
		{1973, 0},  // inside the compressed run
		{1976, 15}, // occupied, one scheme
	}
	for _, tt := range tests {
		if got := m.YearHeight(tt.year, testOpts); got != tt.want {
			t.Errorf("YearHeight(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func formatYear(y int) string {
	return string([]byte{
		byte('0' + y/1000%10),
		byte('0' + y/100%10),
		byte('0' + y/10%10),
		byte('0' + y%10),
	}) + "0000"
}
