package analytics

import (
	"math"
	"math/rand"
	"sort"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// Dataset is an immutable view over joined rows. Filters produce new
// Datasets; aggregates never mutate the underlying rows.
type Dataset struct {
	rows []domain.JoinedRow
}

// NewDataset wraps rows in a Dataset.
func NewDataset(rows []domain.JoinedRow) Dataset {
	return Dataset{rows: rows}
}

// Count returns the number of rows in the view.
func (d Dataset) Count() int {
	return len(d.rows)
}

// Filter returns the subset of rows matching pred, preserving order.
func (d Dataset) Filter(pred func(domain.JoinedRow) bool) Dataset {
	var out []domain.JoinedRow
	for _, row := range d.rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return Dataset{rows: out}
}

// Mean computes the arithmetic mean of sel over all rows, rounded to
// the given number of decimals for presentation. Undefined on an empty
// view.
func (d Dataset) Mean(sel func(domain.JoinedRow) float64, decimals int) (float64, error) {
	if len(d.rows) == 0 {
		return 0, domain.ErrEmptyDataset
	}
	var sum float64
	for _, row := range d.rows {
		sum += sel(row)
	}
	return roundTo(sum/float64(len(d.rows)), decimals), nil
}

// Rate computes the mean of a 0/1 field expressed as a percentage with
// one decimal place. Undefined on an empty view.
func (d Dataset) Rate(sel func(domain.JoinedRow) int) (float64, error) {
	if len(d.rows) == 0 {
		return 0, domain.ErrEmptyDataset
	}
	var sum int
	for _, row := range d.rows {
		sum += sel(row)
	}
	return roundTo(float64(sum)/float64(len(d.rows))*100, 1), nil
}

// Sum totals an integer field across the view.
func (d Dataset) Sum(sel func(domain.JoinedRow) int) int {
	var sum int
	for _, row := range d.rows {
		sum += sel(row)
	}
	return sum
}

// GroupCount maps each distinct value of key to its row count, ordered
// by descending count with ties broken by first-encountered order.
func (d Dataset) GroupCount(key func(domain.JoinedRow) string) []domain.CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, row := range d.rows {
		k := key(row)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]domain.CategoryCount, 0, len(order))
	for _, k := range order {
		out = append(out, domain.CategoryCount{Value: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// BucketCount maps each distinct integer value of key to its row
// count, ordered ascending by value. Used for rating and joining-year
// distributions, where chronological or scale order beats frequency
// order.
func (d Dataset) BucketCount(key func(domain.JoinedRow) int) []domain.BucketCount {
	counts := make(map[int]int)
	for _, row := range d.rows {
		counts[key(row)]++
	}

	out := make([]domain.BucketCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.BucketCount{Bucket: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Bucket < out[j].Bucket
	})
	return out
}

// GroupMean maps each distinct value of key to the mean of val over
// that category, rounded to the given decimals (0 for currency),
// ordered alphabetically by category.
func (d Dataset) GroupMean(key func(domain.JoinedRow) string, val func(domain.JoinedRow) float64, decimals int) []domain.CategoryMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range d.rows {
		k := key(row)
		sums[k] += val(row)
		counts[k]++
	}

	out := make([]domain.CategoryMean, 0, len(sums))
	for k, sum := range sums {
		out = append(out, domain.CategoryMean{Value: k, Mean: roundTo(sum/float64(counts[k]), decimals)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out
}

// AttritionReasons returns the distribution of stated reasons among
// attrited rows only. Rows with an empty reason are counted under the
// "Unspecified" bucket rather than excluded.
func (d Dataset) AttritionReasons() []domain.CategoryCount {
	attrited := d.Filter(func(r domain.JoinedRow) bool { return r.Attrition == 1 })
	return attrited.GroupCount(func(r domain.JoinedRow) string {
		if r.Reason == "" {
			return "Unspecified"
		}
		return r.Reason
	})
}

// Sample returns up to n (salary, rating) pairs drawn without
// replacement. Order is not meaningful and the draw is not
// reproducible.
func (d Dataset) Sample(n int) []domain.SalaryRatingPoint {
	if n > len(d.rows) {
		n = len(d.rows)
	}
	out := make([]domain.SalaryRatingPoint, 0, n)
	for _, i := range rand.Perm(len(d.rows))[:n] {
		out = append(out, domain.SalaryRatingPoint{Salary: d.rows[i].Salary, Rating: d.rows[i].Rating})
	}
	return out
}

// Points returns every (salary, rating) pair in row order.
func (d Dataset) Points() []domain.SalaryRatingPoint {
	out := make([]domain.SalaryRatingPoint, 0, len(d.rows))
	for _, row := range d.rows {
		out = append(out, domain.SalaryRatingPoint{Salary: row.Salary, Rating: row.Rating})
	}
	return out
}

// Departments returns the sorted set of distinct department values in
// the view.
func (d Dataset) Departments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range d.rows {
		if !seen[row.Department] {
			seen[row.Department] = true
			out = append(out, row.Department)
		}
	}
	sort.Strings(out)
	return out
}

// roundTo rounds half away from zero at the given decimal position.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
