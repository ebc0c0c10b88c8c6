package domain

import "slices"

// CompareByDate orders meetings by date, earliest first.
func CompareByDate(a, b *Meeting) int {
	return a.Date().Compare(b.Date())
}

// SortByDate sorts meetings ascending by date. Meetings on the same instant
// keep their relative order.
func SortByDate(meetings []*Meeting) {
	slices.SortStableFunc(meetings, CompareByDate)
}
