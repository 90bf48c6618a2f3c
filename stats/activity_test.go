package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PopFlamingo/TelegramStats/model"
)

func messagesAt(dates ...string) []model.Message {
	messages := make([]model.Message, len(dates))
	for i, date := range dates {
		messages[i] = model.Message{ID: int64(i + 1), Date: date}
	}
	return messages
}

func TestCountHourly(t *testing.T) {
	messages := messagesAt("2023-05-01T02:00:00", "2023-05-01T14:00:00")

	activity, err := CountHourly(messages, ActivityOptions{Scale: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, activity.Total)
	assert.Equal(t, 1, activity.Counts[2])
	assert.Equal(t, 1, activity.Counts[14])
	assert.Equal(t, 50, activity.Percentages[2])
	assert.Equal(t, 50, activity.Percentages[14])
	assert.Equal(t, 0, activity.Percentages[0])
}

func TestCountHourly_CountsSumToTotal(t *testing.T) {
	messages := messagesAt(
		"2023-05-01T02:10:00",
		"2023-05-01T02:50:00",
		"2023-05-01T09:00:00",
		"2023-05-02T23:59:59",
	)

	activity, err := CountHourly(messages, ActivityOptions{Scale: 1})
	require.NoError(t, err)

	sum := 0
	for _, count := range activity.Counts {
		sum += count
	}
	assert.Equal(t, activity.Total, sum)
}

func TestCountHourly_Rounding(t *testing.T) {
	// three messages in one hour of three total: 33.33% rounds to 33;
	// one of three: 66.67% rounds away from zero to 67
	messages := messagesAt("2023-05-01T05:00:00", "2023-05-01T05:30:00", "2023-05-01T11:00:00")

	activity, err := CountHourly(messages, ActivityOptions{Scale: 1})
	require.NoError(t, err)

	assert.Equal(t, 67, activity.Percentages[5])
	assert.Equal(t, 33, activity.Percentages[11])
}

func TestCountHourly_Scale(t *testing.T) {
	messages := messagesAt("2023-05-01T02:00:00", "2023-05-01T14:00:00")

	activity, err := CountHourly(messages, ActivityOptions{Scale: 3})
	require.NoError(t, err)

	assert.Equal(t, 150, activity.Percentages[2])
	assert.Equal(t, 150, activity.Percentages[14])
}

func TestCountHourly_TimezoneConversion(t *testing.T) {
	// 23:30 UTC on a January day is 00:30 the next day in Berlin (UTC+1)
	messages := messagesAt("2023-01-10T23:30:00")

	activity, err := CountHourly(messages, ActivityOptions{Timezone: "Europe/Berlin", Scale: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, activity.Counts[0])
	assert.Equal(t, 0, activity.Counts[23])
	assert.Equal(t, 100, activity.Percentages[0])
}

func TestCountHourly_UnknownTimezone(t *testing.T) {
	messages := messagesAt("2023-05-01T02:00:00")

	_, err := CountHourly(messages, ActivityOptions{Timezone: "Mars/Olympus_Mons", Scale: 1})
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestCountHourly_NoMessages(t *testing.T) {
	_, err := CountHourly(nil, ActivityOptions{Scale: 1})
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestCountHourly_UnparseableDate(t *testing.T) {
	messages := messagesAt("2023-05-01T02:00:00", "later that day")

	_, err := CountHourly(messages, ActivityOptions{Scale: 1})
	assert.ErrorIs(t, err, model.ErrUnparseableDate)
}
