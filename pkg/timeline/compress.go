// Package timeline converts the irregular temporal distribution of scheme
// dates into a compressed vertical axis. Long runs of empty years collapse
// to a fixed-height segment so the diagram does not waste space on decades
// where nothing happened.
package timeline

import "github.com/zhengming-dev/schemeline/pkg/scheme"

// Default spacing values, in canvas pixels.
const (
	DefaultBaseSpacing         = 40.0
	DefaultPerItemSpacing      = 90.0
	DefaultEmptyYearThreshold  = 3
	DefaultEmptySegmentSpacing = 60.0
)

// Options configures the vertical compression of the year axis.
type Options struct {
	// BaseSpacing is the height allotted to a year with no schemes.
	BaseSpacing float64
	// PerItemSpacing is the additional height per scheme in an occupied year.
	PerItemSpacing float64
	// EmptyYearThreshold is the minimum run length, in years, for an empty
	// run to be collapsed. Shorter runs keep BaseSpacing per year.
	EmptyYearThreshold int
	// EmptySegmentSpacing is the fixed total height of any collapsed run,
	// regardless of how many years it spans.
	EmptySegmentSpacing float64
}

// SetDefaults fills zero-valued fields with package defaults.
func (o *Options) SetDefaults() {
	if o.BaseSpacing == 0 {
		o.BaseSpacing = DefaultBaseSpacing
	}
	if o.PerItemSpacing == 0 {
		o.PerItemSpacing = DefaultPerItemSpacing
	}
	if o.EmptyYearThreshold == 0 {
		o.EmptyYearThreshold = DefaultEmptyYearThreshold
	}
	if o.EmptySegmentSpacing == 0 {
		o.EmptySegmentSpacing = DefaultEmptySegmentSpacing
	}
}

// OffsetMap maps every calendar year in [MinYear, MaxYear] to the cumulative
// vertical offset at the top of that year's band. Offsets are non-decreasing
// with the year; all years inside a collapsed empty run share one offset.
type OffsetMap struct {
	MinYear int
	MaxYear int
	Offsets map[int]float64
	Counts  map[int]int

	// Compressed marks years belonging to a collapsed empty run.
	Compressed map[int]bool

	// Height is the total vertical extent: the offset past the last year.
	Height float64
}

// YearHeight returns the height of a year's band: BaseSpacing plus
// PerItemSpacing per scheme dated in that year. Collapsed years report 0.
func (m *OffsetMap) YearHeight(year int, opts Options) float64 {
	if m.Counts[year] > 0 {
		return opts.BaseSpacing + float64(m.Counts[year])*opts.PerItemSpacing
	}
	if m.Compressed[year] {
		return 0
	}
	return opts.BaseSpacing
}

// Compress builds the year → offset mapping for the given schemes.
// The scan accumulates a running offset from the earliest to the latest
// dated year: occupied years grow with their scheme count, short empty
// years keep base spacing, and qualifying empty runs contribute
// EmptySegmentSpacing exactly once for the whole run.
//
// An empty scheme list yields a zero-valued map with a nil Offsets field.
func Compress(schemes []scheme.Scheme, opts Options) OffsetMap {
	opts.SetDefaults()

	counts := make(map[int]int)
	minYear, maxYear := 0, 0
	for i := range schemes {
		y := scheme.Year(schemes[i].Date)
		if y == 0 {
			continue
		}
		counts[y]++
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	if minYear == 0 {
		return OffsetMap{}
	}

	// First pass: mark years that belong to a compressible empty run.
	compressed := make(map[int]bool)
	for y := minYear; y <= maxYear; y++ {
		if counts[y] > 0 {
			continue
		}
		runStart := y
		for y < maxYear && counts[y+1] == 0 {
			y++
		}
		if y-runStart+1 >= opts.EmptyYearThreshold {
			for r := runStart; r <= y; r++ {
				compressed[r] = true
			}
		}
	}

	// Second pass: accumulate offsets. Each year's offset is the top of
	// its band, so every year of a collapsed run shares one level and the
	// run's single segment height lands between the run and whatever
	// follows it.
	offsets := make(map[int]float64, maxYear-minYear+1)
	cursor := 0.0
	for y := minYear; y <= maxYear; y++ {
		offsets[y] = cursor
		switch {
		case counts[y] > 0:
			cursor += opts.BaseSpacing + float64(counts[y])*opts.PerItemSpacing
		case compressed[y]:
			// Only the run's last year advances the cursor.
			if !compressed[y+1] {
				cursor += opts.EmptySegmentSpacing
			}
		default:
			cursor += opts.BaseSpacing
		}
	}

	return OffsetMap{
		MinYear:    minYear,
		MaxYear:    maxYear,
		Offsets:    offsets,
		Counts:     counts,
		Compressed: compressed,
		Height:     cursor,
	}
}
