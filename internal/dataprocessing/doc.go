// Package dataprocessing implements the normalization pipeline that turns
// loosely-typed spreadsheet rows into dashboard card data and historical
// series.
//
// The pipeline is a set of pure functions layered bottom-up:
//
// 1. ParseNumeric: heterogeneous cell value to float64
// 2. IsPeriodColumn / ParsePeriodForSort: header classification and ordering
// 3. FindRevenueRow: heuristic selection of the top-line revenue row
// 4. SummarizeCard: latest/previous values, change and percentage change
// 5. ExtractHistorical: per-metric chronological series
//
// All functions are total: malformed input degrades to "not parseable",
// never to a panic or an error return. The orchestration lives in the
// services package.
package dataprocessing
