// Package filter narrows an export's message sequence by sender identity
// and date range.
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PopFlamingo/TelegramStats/model"
)

var ErrInvalidDate = errors.New("calendar date must be three integer day/month/year components")

// Options captures the filtering configuration. Nil fields are inactive
// predicates; active predicates combine conjunctively.
type Options struct {
	From  *string
	Start *time.Time
	End   *time.Time
}

// Filter applies sender and date-range predicates to a message sequence.
type Filter struct {
	from  *string
	start *time.Time
	end   *time.Time
}

// New creates a Filter from the provided options.
func New(opts Options) *Filter {
	return &Filter{
		from:  opts.From,
		start: opts.Start,
		end:   opts.End,
	}
}

// Apply returns the ordered sub-sequence of messages that satisfy every
// active predicate. The sender match is exact and case-sensitive; the date
// range is inclusive on both ends. The input is never mutated.
//
// When a date predicate is active, a message whose date cannot be parsed is
// an error rather than a silent drop.
func (f *Filter) Apply(messages []model.Message) ([]model.Message, error) {
	out := make([]model.Message, 0, len(messages))
	for _, msg := range messages {
		if f.from != nil && msg.From != *f.from {
			continue
		}
		if f.start != nil || f.end != nil {
			ts, err := msg.Time()
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", msg.ID, err)
			}
			if f.start != nil && ts.Before(*f.start) {
				continue
			}
			if f.end != nil && ts.After(*f.end) {
				continue
			}
		}
		out = append(out, msg)
	}
	return out, nil
}

// ParseCalendarDate parses a day/month/year string such as "31/12/2023" as
// midnight UTC on that day. Anything other than exactly three integer
// components fails with ErrInvalidDate.
func ParseCalendarDate(value string) (time.Time, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
		nums[i] = n
	}

	return time.Date(nums[2], time.Month(nums[1]), nums[0], 0, 0, 0, 0, time.UTC), nil
}
