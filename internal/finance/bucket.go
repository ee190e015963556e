package finance

import (
	"fmt"
	"time"
)

// Bucket is one contiguous time sub-range of a wealth history: a calendar
// month for ranges up to a year, a semester beyond that.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Window returns the bucket's own date range.
func (b Bucket) Window() Window {
	return Window{Start: b.Start, End: b.End}
}

// ClipTo truncates the bucket to the given filter window. Buckets partially
// outside the filter range are truncated, never dropped, so the bucket count
// stays deterministic for a given range.
func (b Bucket) ClipTo(w Window) Bucket {
	clipped := b
	if clipped.Start.Before(w.Start) {
		clipped.Start = w.Start
	}
	if clipped.End.After(w.End) {
		clipped.End = w.End
	}
	return clipped
}

// BucketsForRange partitions [start, end] into labeled buckets.
//
// Granularity: monthly when the range spans at most 365 days, semester-sized
// otherwise. Month labels carry a two-digit year suffix only when the range
// crosses calendar years; semester labels are always S{1|2}/YY. An inverted
// range yields no buckets.
func BucketsForRange(start, end time.Time) []Bucket {
	if start.After(end) {
		return []Bucket{}
	}

	days := int(end.Sub(start).Hours() / 24)
	if days <= 365 {
		return monthBuckets(start, end)
	}
	return semesterBuckets(start, end)
}

// LastMonths returns the n calendar months ending at now, labeled without a
// year suffix. This is the default window when no date filter is applied.
func LastMonths(n int, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		buckets = append(buckets, Bucket{
			Label: first.Format("Jan"),
			Start: first,
			End:   first.AddDate(0, 1, -1),
		})
	}
	return buckets
}

func monthBuckets(start, end time.Time) []Bucket {
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	// Disambiguate only when the range crosses a year boundary.
	withYear := start.Year() != end.Year()

	buckets := []Bucket{}
	for !current.After(last) {
		label := current.Format("Jan")
		if withYear {
			label = current.Format("Jan/06")
		}
		buckets = append(buckets, Bucket{
			Label: label,
			Start: current,
			End:   current.AddDate(0, 1, -1),
		})
		current = current.AddDate(0, 1, 0)
	}
	return buckets
}

func semesterBuckets(start, end time.Time) []Bucket {
	current := time.Date(start.Year(), semesterStartMonth(start.Month()), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), semesterStartMonth(end.Month()), 1, 0, 0, 0, 0, time.UTC)

	buckets := []Bucket{}
	for !current.After(last) {
		semester := (int(current.Month())-1)/6 + 1
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("S%d/%s", semester, current.Format("06")),
			Start: current,
			End:   current.AddDate(0, 6, -1),
		})
		current = current.AddDate(0, 6, 0)
	}
	return buckets
}

// semesterStartMonth floors a month to January or July.
func semesterStartMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/6*6 + 1)
}
