package dataprocessing

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Accepted lexical forms for a reporting-period header: "31 Dec 23",
// "5 Jan 2024" (anywhere in the header) or an exact ISO "2024-01-05".
var (
	dayMonthYearPattern = regexp.MustCompile(`(\d{1,2}) ([A-Za-z]{3}) (\d{2,4})`)
	isoDatePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// monthIndex maps the English three-letter abbreviations, case-sensitive.
// "JAN" or "jan" in a header is not a recognized month.
var monthIndex = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// IsPeriodColumn reports whether a column header denotes a reporting period.
func IsPeriodColumn(header string) bool {
	return dayMonthYearPattern.MatchString(header) || isoDatePattern.MatchString(header)
}

// ParsePeriodForSort converts a period header into a comparable date for
// chronological ordering. The result is never used for display. Headers
// matching neither accepted form return ok=false and the zero time, so they
// sort last when ordering descending.
func ParsePeriodForSort(header string) (time.Time, bool) {
	if isoDatePattern.MatchString(header) {
		t, err := time.Parse("2006-01-02", header)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	m := dayMonthYearPattern.FindStringSubmatch(header)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, ok := monthIndex[m[2]]
	if !ok {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// SortPeriodsDescending orders period headers latest-first, in place.
// Unparseable headers sort last.
func SortPeriodsDescending(periods []string) {
	sort.SliceStable(periods, func(i, j int) bool {
		ti, _ := ParsePeriodForSort(periods[i])
		tj, _ := ParsePeriodForSort(periods[j])
		return ti.After(tj)
	})
}
