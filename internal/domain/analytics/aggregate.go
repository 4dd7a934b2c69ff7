// Package analytics turns raw storefront events into the dashboard summary.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// TopN is the length of the top product lists.
const TopN = 5

const (
	hourLabelLayout = "15:04"
	dayLabelLayout  = "02.01"
	hourlyBuckets   = 12
)

type bucket struct {
	start, end time.Time
	label      string
	value      int
}

// Buckets builds the empty timeline for the range, oldest first.
// 24h yields the trailing 12 hours. 7d and 30d yield one bucket per calendar
// day in loc, today included.
func Buckets(r entity.TimeRange, now time.Time, loc *time.Location) []entity.TimelinePoint {
	bs := buildBuckets(r, now, loc)
	out := make([]entity.TimelinePoint, len(bs))
	for i, b := range bs {
		out[i] = entity.TimelinePoint{Label: b.label}
	}

	return out
}

func buildBuckets(r entity.TimeRange, now time.Time, loc *time.Location) []bucket {
	local := now.In(loc)

	if r == entity.Range24h {
		top := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
		out := make([]bucket, hourlyBuckets)
		for i := range hourlyBuckets {
			start := top.Add(-time.Duration(hourlyBuckets-1-i) * time.Hour)
			out[i] = bucket{start: start, end: start.Add(time.Hour), label: start.Format(hourLabelLayout)}
		}

		return out
	}

	days := 7
	if r == entity.Range30d {
		days = 30
	}

	out := make([]bucket, days)
	for i := range days {
		offset := days - 1 - i
		start := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
		end := time.Date(local.Year(), local.Month(), local.Day()-offset+1, 0, 0, 0, 0, loc)
		out[i] = bucket{start: start, end: end, label: start.Format(dayLabelLayout)}
	}

	return out
}

type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) inc(name string) {
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

// top returns the n highest counts, ties kept in first-seen order.
func (t *tally) top(n int) []entity.ProductCount {
	out := make([]entity.ProductCount, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, entity.ProductCount{Name: name, Count: t.counts[name]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}

	return out
}

// Aggregate summarises the events at or after now minus the range window.
// Products are tallied by name, so two products sharing a name share a row.
func Aggregate(events []entity.AnalyticsEvent, r entity.TimeRange, now time.Time, loc *time.Location) entity.Dashboard {
	if loc == nil {
		loc = time.UTC
	}

	cutoff := now.Add(-r.Window())
	buckets := buildBuckets(r, now, loc)
	views, adds := newTally(), newTally()
	durations := make([]float64, 0)

	var dash entity.Dashboard
	for _, ev := range events {
		if ev.Timestamp.Before(cutoff) {
			continue
		}

		switch ev.Type {
		case entity.EventViewProduct:
			dash.TotalProductViews++
			views.inc(ev.ProductName)
		case entity.EventAddToCart:
			dash.TotalAddToCart++
			adds.inc(ev.ProductName)
		case entity.EventCheckoutStart:
			dash.TotalCheckouts++
		case entity.EventSessionDuration:
			durations = append(durations, float64(ev.Duration))
		}

		for i := range buckets {
			if !ev.Timestamp.Before(buckets[i].start) && ev.Timestamp.Before(buckets[i].end) {
				buckets[i].value++
				break
			}
		}
	}

	if len(durations) > 0 {
		if mean, err := stats.Mean(durations); err == nil {
			dash.AvgSessionDuration = int(math.Round(mean))
		}
	}

	dash.TopViewedProducts = views.top(TopN)
	dash.TopAddedProducts = adds.top(TopN)
	dash.ActivityTimeline = make([]entity.TimelinePoint, len(buckets))
	for i, b := range buckets {
		dash.ActivityTimeline[i] = entity.TimelinePoint{Label: b.label, Value: b.value}
	}

	return dash
}
