package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Time(t *testing.T) {
	msg := Message{Date: "2023-06-15T14:30:05"}

	ts, err := msg.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 15, 14, 30, 5, 0, time.UTC), ts)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestMessage_Time_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "empty", date: ""},
		{name: "garbage", date: "not-a-date"},
		{name: "date only", date: "2023-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Message{Date: tt.date}.Time()
			assert.ErrorIs(t, err, ErrUnparseableDate)
		})
	}
}
