// Package compute derives the demographic report from a cleaned dataset.
//
// metrics.go holds one pure function per metric: race counts, mean age of
// men, share of Bachelors, rich share by education, minimum weekly hours,
// rich share among minimum-hours workers, the highest earning country and
// the top occupation of rich workers from India. Percentages are rounded to
// one decimal.
//
// frequency.go provides Counter, a single-pass frequency table. Sorted and
// Mode break ties by first-seen order.
//
// generator.go ties loading, computing and printing together. Generate is
// synchronous and rereads the dataset on every call.
//
// Empty denominator groups fail with ErrDivisionUndefined; required filters
// that match nothing fail with ErrEmptySubset.
package compute
