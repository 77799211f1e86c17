package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablescrub/domain/table"
	"tablescrub/internal/errors"
)

func buildTable(t *testing.T, headers []string, rows [][]string) *table.Table {
	t.Helper()
	tab, err := table.New(headers)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, tab.AppendRow(r))
	}
	return tab
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"auto", "mean", "median", "mode", "empty"} {
		s, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, Strategy(name), s)
	}
	_, err := ParseStrategy("bogus")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestRemoveDuplicates_PreservesOrder(t *testing.T) {
	tab := buildTable(t, []string{"a"}, [][]string{{"1"}, {"2"}, {"1"}, {"3"}})
	out := RemoveDuplicates(tab, []int{2})

	require.Equal(t, 3, out.Len())
	assert.Equal(t, table.Row{"1"}, out.Row(0))
	assert.Equal(t, table.Row{"2"}, out.Row(1))
	assert.Equal(t, table.Row{"3"}, out.Row(2))
	// input untouched
	assert.Equal(t, 4, tab.Len())
}

func TestRemoveDuplicates_IgnoresUnknownIndices(t *testing.T) {
	tab := buildTable(t, []string{"a"}, [][]string{{"1"}, {"2"}})
	out := RemoveDuplicates(tab, []int{7, -1})
	assert.Equal(t, 2, out.Len())
}

func TestFillMissing_AutoUsesMeanForNumeric(t *testing.T) {
	tab := buildTable(t, []string{"age"}, [][]string{{"30"}, {""}, {"10"}})
	filled, summary := FillMissing(tab, StrategyAuto)

	v, _ := filled.Cell(1, "age")
	assert.Equal(t, "20", v)
	require.NotNil(t, summary["age"].FilledWith)
	assert.Equal(t, "20", *summary["age"].FilledWith)
	assert.Equal(t, 1, summary["age"].Count)

	// input not mutated
	orig, _ := tab.Cell(1, "age")
	assert.Equal(t, "", orig)
}

func TestFillMissing_MedianStrategy(t *testing.T) {
	tab := buildTable(t, []string{"n"}, [][]string{{"1"}, {"2"}, {"100"}, {""}})
	filled, summary := FillMissing(tab, StrategyMedian)

	v, _ := filled.Cell(3, "n")
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, summary["n"].Count)
}

func TestFillMissing_NumericWithoutParseableValuesFillsZero(t *testing.T) {
	tab := buildTable(t, []string{"n"}, [][]string{{"NaN"}, {""}})
	filled, _ := FillMissing(tab, StrategyMean)
	v, _ := filled.Cell(1, "n")
	assert.Equal(t, "0", v)
}

func TestFillMissing_TextUsesMode(t *testing.T) {
	tab := buildTable(t, []string{"city"}, [][]string{{"NYC"}, {"LA"}, {"NYC"}, {""}})
	filled, summary := FillMissing(tab, StrategyAuto)

	v, _ := filled.Cell(3, "city")
	assert.Equal(t, "NYC", v)
	assert.Equal(t, 1, summary["city"].Count)
}

func TestFillMissing_ModeTieBreakIsLexicographic(t *testing.T) {
	tab := buildTable(t, []string{"c"}, [][]string{{"b"}, {"a"}, {"b"}, {"a"}, {""}})
	filled, _ := FillMissing(tab, StrategyMode)
	v, _ := filled.Cell(4, "c")
	assert.Equal(t, "a", v)
}

func TestFillMissing_SingleValueMode(t *testing.T) {
	tab := buildTable(t, []string{"c"}, [][]string{{"x"}, {""}})
	filled, _ := FillMissing(tab, StrategyMode)
	v, _ := filled.Cell(1, "c")
	assert.Equal(t, "x", v)
}

func TestFillMissing_ColumnWithoutValuesFillsEmpty(t *testing.T) {
	tab := buildTable(t, []string{"c"}, [][]string{{""}, {"  "}})
	filled, summary := FillMissing(tab, StrategyMode)
	v, _ := filled.Cell(0, "c")
	assert.Equal(t, "", v)
	require.NotNil(t, summary["c"].FilledWith)
	assert.Equal(t, "", *summary["c"].FilledWith)
	assert.Equal(t, 2, summary["c"].Count)
}

func TestFillMissing_EmptyStrategy(t *testing.T) {
	tab := buildTable(t, []string{"city"}, [][]string{{"NYC"}, {""}})
	filled, summary := FillMissing(tab, StrategyEmpty)

	v, _ := filled.Cell(1, "city")
	assert.Equal(t, "", v)
	require.NotNil(t, summary["city"].FilledWith)
	assert.Equal(t, "", *summary["city"].FilledWith)
	assert.Equal(t, 1, summary["city"].Count)
}

func TestFillMissing_NoMissingCells(t *testing.T) {
	tab := buildTable(t, []string{"a"}, [][]string{{"1"}, {"2"}})
	_, summary := FillMissing(tab, StrategyAuto)
	assert.Nil(t, summary["a"].FilledWith)
	assert.Equal(t, 0, summary["a"].Count)
}

func TestFillMissing_Idempotent(t *testing.T) {
	tab := buildTable(t, []string{"age", "city"}, [][]string{
		{"30", "NYC"},
		{"", ""},
		{"10", "LA"},
		{"", "NYC"},
	})
	once, first := FillMissing(tab, StrategyAuto)
	assert.Equal(t, 2, first["age"].Count)
	assert.Equal(t, 2, first["city"].Count)

	twice, second := FillMissing(once, StrategyAuto)
	for h, fr := range second {
		assert.Equal(t, 0, fr.Count, "column %s filled again", h)
		assert.Nil(t, fr.FilledWith)
	}
	for i := 0; i < once.Len(); i++ {
		assert.Equal(t, once.Row(i), twice.Row(i))
	}
}
