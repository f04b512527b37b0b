package dataprocessing

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"finboard/pkg/contracts/domain"
)

// The dashboard displays amounts in de-DE style: "." grouping, "," decimal.
var germanPrinter = message.NewPrinter(language.German)

// FormatAmount renders a monetary amount in the display locale, e.g.
// 1234.5 -> "1.234,5".
func FormatAmount(v float64) string {
	return germanPrinter.Sprintf("%v", number.Decimal(v))
}

func formatPercentage(ratio float64) string {
	return germanPrinter.Sprintf("%.2f%%", ratio*100)
}

// PeriodLabel derives the human label for a period header. When the header
// parses to a plausible calendar date the label is the quarter form
// "Q<n> <year>"; otherwise the raw header is echoed in a fallback label and
// exact is false.
func PeriodLabel(period string) (label string, exact bool) {
	t, ok := ParsePeriodForSort(period)
	if ok && t.Year() > 1900 {
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, t.Year()), true
	}
	return fmt.Sprintf("Latest (%s)", period), false
}

// SummarizeCard computes the card summary from the revenue row and the
// period columns sorted latest-first. The caller guarantees at least one
// period column.
//
// When the prior period is zero the percentage is pinned to an infinity:
// "Inf%" for growth, "-Inf%" otherwise. The "otherwise" branch deliberately
// includes delta == 0, so a 0 -> 0 transition reports "-Inf%". Downstream
// consumers rely on that exact output; keep the branch order.
func SummarizeCard(revenueRow domain.Row, orderedPeriods []string) domain.CardData {
	card := domain.UnavailableCardData()

	latest := orderedPeriods[0]
	latestValue, latestOK := ParseNumeric(revenueRow.Cell(latest))

	var previousValue float64
	previousOK := false
	if len(orderedPeriods) > 1 {
		previousValue, previousOK = ParseNumeric(revenueRow.Cell(orderedPeriods[1]))
	}

	if latestOK {
		card.Revenue = FormatAmount(latestValue)
	}

	if latestOK && previousOK {
		delta := latestValue - previousValue
		card.Change = FormatAmount(delta)

		switch {
		case previousValue != 0:
			ratio := delta / previousValue
			card.PercentageChange = formatPercentage(ratio)
			card.NumericPercentageChange = &ratio
		case delta > 0:
			card.PercentageChange = "Inf%"
			inf := math.Inf(1)
			card.NumericPercentageChange = &inf
		default:
			card.PercentageChange = "-Inf%"
			negInf := math.Inf(-1)
			card.NumericPercentageChange = &negInf
		}
	}

	card.RevenueLabel, _ = PeriodLabel(latest)
	return card
}
