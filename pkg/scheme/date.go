package scheme

import "strconv"

// Days per month used for the fraction-of-year estimate. February is held
// at 28; leap years are irrelevant at timeline resolution.
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Year extracts the calendar year from a YYYYMMDD date string.
// Returns 0 for strings shorter than four digits or with a non-numeric
// year segment; callers treat year 0 as "no usable date".
func Year(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// YearFraction returns the proportion of the year elapsed at the date's
// month and day, in [0, 1). Month or day segments of "00" (reduced
// precision) are treated as 01, so a year-only date sits at the top of
// its year band.
func YearFraction(date string) float64 {
	month, day := 1, 1
	if len(date) >= 6 {
		if m, err := strconv.Atoi(date[4:6]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(date) >= 8 {
		if d, err := strconv.Atoi(date[6:8]); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return (float64(daysBeforeMonth[month]) + float64(day-1)) / 365.0
}
