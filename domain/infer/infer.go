// Package infer classifies cell values and whole columns into coarse data
// types, and provides the lenient numeric parser shared by statistics,
// outlier detection and imputation.
package infer

import (
	"math"
	"strconv"
	"strings"
)

// CellType is the classification of a single cell value.
type CellType string

const (
	CellMissing CellType = "missing"
	CellInt     CellType = "int"
	CellFloat   CellType = "float"
	CellText    CellType = "str"
)

// ColumnType is the majority-vote classification of a column.
type ColumnType string

const (
	TypeInt     ColumnType = "int"
	TypeFloat   ColumnType = "float"
	TypeText    ColumnType = "str"
	TypeUnknown ColumnType = "unknown"
)

// IsNumeric reports whether the column type carries numeric semantics.
func (c ColumnType) IsNumeric() bool {
	return c == TypeInt || c == TypeFloat
}

// IsMissing implements the global missing rule: a value is missing when it is
// empty after trimming whitespace.
func IsMissing(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ClassifyCell returns the type of a single cell value. Integer parsing is
// attempted before float, so a value valid under both grammars is an int.
func ClassifyCell(value string) CellType {
	v := strings.TrimSpace(value)
	if v == "" {
		return CellMissing
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return CellInt
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return CellFloat
	}
	return CellText
}

// votePrecedence fixes the tie-break for majority voting: under equal counts
// int beats float beats str.
var votePrecedence = []CellType{CellInt, CellFloat, CellText}

// ClassifyColumn infers a column type by majority vote over the non-missing
// cells. It returns TypeUnknown only when every cell is missing.
func ClassifyColumn(values []string) ColumnType {
	counts := make(map[CellType]int, 3)
	for _, v := range values {
		if ct := ClassifyCell(v); ct != CellMissing {
			counts[ct]++
		}
	}
	if len(counts) == 0 {
		return TypeUnknown
	}
	best := CellType("")
	bestCount := -1
	for _, ct := range votePrecedence {
		if counts[ct] > bestCount {
			best = ct
			bestCount = counts[ct]
		}
	}
	return ColumnType(best)
}

// ToNumber leniently converts a cell to a float64. Thousands-separator commas
// are stripped before parsing. Missing cells and parse failures yield NaN,
// which callers exclude from statistics.
func ToNumber(value string) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return math.NaN()
	}
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
