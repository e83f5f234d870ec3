package timeline

import "strconv"

// Tick defaults.
const (
	DefaultLabelInterval = 10
	DefaultTickRadius    = 2
)

// Tick is one year label on the compressed axis.
type Tick struct {
	Year  int
	Label string
	Y     float64
}

// Ticks selects the year labels to display along the axis. A year gets a
// tick when it is a multiple of interval or is the axis minimum/maximum,
// and at least one scheme exists within radius years of it. Interval ticks
// deep inside a compressed run would all land on the same pixel row with
// no data near them, so the proximity rule suppresses them.
func Ticks(m OffsetMap, interval, radius int) []Tick {
	if m.Offsets == nil {
		return nil
	}
	if interval <= 0 {
		interval = DefaultLabelInterval
	}
	if radius <= 0 {
		radius = DefaultTickRadius
	}

	var ticks []Tick
	for y := m.MinYear; y <= m.MaxYear; y++ {
		if y%interval != 0 && y != m.MinYear && y != m.MaxYear {
			continue
		}
		if !hasNearbyData(m, y, radius) {
			continue
		}
		ticks = append(ticks, Tick{
			Year:  y,
			Label: strconv.Itoa(y),
			Y:     m.Offsets[y],
		})
	}
	return ticks
}

func hasNearbyData(m OffsetMap, year, radius int) bool {
	for d := -radius; d <= radius; d++ {
		if m.Counts[year+d] > 0 {
			return true
		}
	}
	return false
}
