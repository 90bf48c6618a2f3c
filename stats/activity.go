package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/PopFlamingo/TelegramStats/model"
)

var (
	ErrNoMessages      = errors.New("no messages matched the filters")
	ErrUnknownTimezone = errors.New("unknown timezone identifier")
)

// ActivityOptions configures the hourly analyzer.
type ActivityOptions struct {
	// Timezone is an IANA zone name; empty means UTC.
	Timezone string
	// Scale multiplies each percentage for histogram rendering.
	Scale int
}

// HourlyActivity holds per-hour message counts and their scaled percentage
// shares. Counts sum to Total.
type HourlyActivity struct {
	Counts      [24]int
	Percentages [24]int
	Total       int
}

// CountHourly buckets messages by the hour-of-day of their civil time in the
// configured zone and computes each hour's share of the total, rounded
// half-away-from-zero and multiplied by the scale factor.
//
// A message with an unparseable date is an error, as is an empty input set
// (the percentages would otherwise divide by zero).
func CountHourly(messages []model.Message, opts ActivityOptions) (*HourlyActivity, error) {
	loc := time.UTC
	if opts.Timezone != "" {
		l, err := time.LoadLocation(opts.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, opts.Timezone)
		}
		loc = l
	}

	activity := &HourlyActivity{}
	for _, msg := range messages {
		ts, err := msg.Time()
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", msg.ID, err)
		}
		activity.Counts[ts.In(loc).Hour()]++
		activity.Total++
	}

	if activity.Total == 0 {
		return nil, ErrNoMessages
	}

	for hour, count := range activity.Counts {
		share := float64(count) / float64(activity.Total) * 100
		activity.Percentages[hour] = int(math.Round(share)) * opts.Scale
	}

	return activity, nil
}
