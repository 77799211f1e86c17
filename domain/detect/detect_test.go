package detect

import (
	"math"
	"reflect"
	"testing"

	"tablescrub/domain/table"
)

func buildTable(t *testing.T, headers []string, rows [][]string) *table.Table {
	t.Helper()
	tab, err := table.New(headers)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if err := tab.AppendRow(r); err != nil {
			t.Fatal(err)
		}
	}
	return tab
}

func TestMissing_CountsPerColumn(t *testing.T) {
	tab := buildTable(t, []string{"id", "age", "city"}, [][]string{
		{"1", "30", "NYC"},
		{"2", "", "LA"},
		{"3", "  ", ""},
	})
	got := Missing(tab)
	want := map[string]int{"id": 0, "age": 2, "city": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}
}

func TestDuplicates_FirstOccurrenceIsCanonical(t *testing.T) {
	tab := buildTable(t, []string{"id", "age", "city"}, [][]string{
		{"1", "30", "NYC"},
		{"2", "", "LA"},
		{"1", "30", "NYC"},
	})
	count, indices := Duplicates(tab)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !reflect.DeepEqual(indices, []int{2}) {
		t.Errorf("indices = %v, want [2]", indices)
	}
	if count != len(indices) {
		t.Error("count must equal len(indices)")
	}
}

func TestDuplicates_TrimmedComparison(t *testing.T) {
	tab := buildTable(t, []string{"a"}, [][]string{
		{"x"},
		{" x "},
		{"y"},
		{"x"},
	})
	count, indices := Duplicates(tab)
	if count != 2 || !reflect.DeepEqual(indices, []int{1, 3}) {
		t.Errorf("got count=%d indices=%v, want 2 and [1 3]", count, indices)
	}
}

func TestDuplicates_None(t *testing.T) {
	tab := buildTable(t, []string{"a"}, [][]string{{"1"}, {"2"}})
	count, indices := Duplicates(tab)
	if count != 0 || len(indices) != 0 {
		t.Errorf("got count=%d indices=%v, want none", count, indices)
	}
}

func TestOutliers_SingleExtremeValue(t *testing.T) {
	// 19 ordinary values and one three orders of magnitude larger
	values := make([]float64, 0, 20)
	for v := 5.0; v <= 23; v++ {
		values = append(values, v)
	}
	values = append(values, 5000)

	got := Outliers(values)
	if !reflect.DeepEqual(got, []int{19}) {
		t.Errorf("Outliers() = %v, want [19]", got)
	}
}

func TestOutliers_FewerThanFourValues(t *testing.T) {
	if got := Outliers([]float64{1, 2, 1000}); len(got) != 0 {
		t.Errorf("expected no outliers for <4 values, got %v", got)
	}
	nan := math.NaN()
	if got := Outliers([]float64{1, nan, 2, nan, 1000}); len(got) != 0 {
		t.Errorf("NaN entries must not count toward the minimum, got %v", got)
	}
}

func TestOutliers_IgnoresNaNButKeepsIndices(t *testing.T) {
	values := []float64{math.NaN(), 1, 1, 1, 1, 1, 1, 1, 50}
	got := Outliers(values)
	if !reflect.DeepEqual(got, []int{8}) {
		t.Errorf("Outliers() = %v, want [8]", got)
	}
}

func TestOutliers_UniformValues(t *testing.T) {
	if got := Outliers([]float64{3, 3, 3, 3, 3}); len(got) != 0 {
		t.Errorf("uniform data has no outliers, got %v", got)
	}
}
