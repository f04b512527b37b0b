package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"

	"finboard/pkg/contracts/domain"
)

// floatPrefixPattern matches the longest valid leading float in a string,
// mirroring the "parse leading numeric prefix" rule: trailing garbage after
// a valid number does not fail the parse ("123abc" -> 123).
var floatPrefixPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumeric converts a heterogeneous cell value into a float64. Sheets
// report numbers inconsistently: native numbers, strings with thousands
// separators ("1,234"), percentages ("12%"), and accountant-style negatives
// ("(50)"). The second return value is false when the cell carries no
// parseable number.
func ParseNumeric(c domain.Cell) (float64, bool) {
	switch c.Kind {
	case domain.CellNumber:
		return c.Num, true
	case domain.CellString:
		return parseNumericString(c.Str)
	default:
		return 0, false
	}
}

func parseNumericString(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")

	// Percent handling takes priority over parenthesized negatives; a value
	// cannot be both.
	if strings.HasSuffix(s, "%") {
		v, ok := parseFloatPrefix(strings.TrimSuffix(s, "%"))
		if !ok {
			return 0, false
		}
		return v / 100, true
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	return parseFloatPrefix(s)
}

// parseFloatPrefix parses the longest valid leading float of s.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	match := floatPrefixPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
