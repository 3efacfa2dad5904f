package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/moodmate-backend/internal/services"
)

func TestMonthlySummaryGroupsAndSorts(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "great day", "2024-03-05")
	moods.add("user-a", "😢", "rough", "2024-03-20")
	moods.add("user-a", "😢", "still rough", "2024-03-21")
	// Outside the month and outside the user: both must be ignored.
	moods.add("user-a", "🎉", "new month", "2024-04-01")
	moods.add("user-b", "😡", "not mine", "2024-03-10")

	agg := services.NewAggregationService(moods)
	summary, err := agg.MonthlySummary(context.Background(), "user-a", 2024, 3)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "😢", summary[0].Emoji)
	assert.Equal(t, 2, summary[0].Count)
	assert.Equal(t, []string{"rough", "still rough"}, summary[0].Notes)

	assert.Equal(t, "😄", summary[1].Emoji)
	assert.Equal(t, 1, summary[1].Count)
	assert.Equal(t, []string{"great day"}, summary[1].Notes)
}

func TestMonthlySummaryTiesKeepFirstSeenOrder(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "great day", "2024-03-05")
	moods.add("user-a", "😢", "rough", "2024-03-20")

	agg := services.NewAggregationService(moods)
	summary, err := agg.MonthlySummary(context.Background(), "user-a", 2024, 3)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Equal counts: 😄 was seen first and must stay first.
	assert.Equal(t, "😄", summary[0].Emoji)
	assert.Equal(t, "😢", summary[1].Emoji)
}

func TestMonthlySummaryBoundariesAreHalfOpen(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "first of march", "2024-03-01")
	moods.add("user-a", "😢", "last of feb", "2024-02-29")
	moods.add("user-a", "🎉", "first of april", "2024-04-01")

	agg := services.NewAggregationService(moods)
	summary, err := agg.MonthlySummary(context.Background(), "user-a", 2024, 3)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "😄", summary[0].Emoji)
}

func TestMonthlySummaryInvalidRange(t *testing.T) {
	agg := services.NewAggregationService(&fakeMoodStore{})

	for _, tc := range []struct{ year, month int }{
		{2024, 0},
		{2024, 13},
		{0, 5},
		{10000, 5},
		{-3, 5},
	} {
		_, err := agg.MonthlySummary(context.Background(), "user-a", tc.year, tc.month)
		assert.ErrorIs(t, err, services.ErrInvalidRange, "year=%d month=%d", tc.year, tc.month)
	}
}

func TestMonthlySummaryEmptyMonthIsNotAnError(t *testing.T) {
	agg := services.NewAggregationService(&fakeMoodStore{})
	summary, err := agg.MonthlySummary(context.Background(), "user-a", 2024, 3)
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.NotNil(t, summary)
}

func TestStatisticsBucketsByEmojiAndDay(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-a", "😢", "", "2024-03-05")
	moods.add("user-a", "😄", "", "2024-03-07")

	agg := services.NewAggregationService(moods)
	buckets, err := agg.Statistics(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, buckets, 3)

	assert.Equal(t, services.DayBucket{Emoji: "😄", Date: "2024-03-05", Count: 2}, buckets[0])
	assert.Equal(t, services.DayBucket{Emoji: "😢", Date: "2024-03-05", Count: 1}, buckets[1])
	assert.Equal(t, services.DayBucket{Emoji: "😄", Date: "2024-03-07", Count: 1}, buckets[2])
}

func TestEmojiTotalsAgreeWithBuckets(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-a", "😄", "", "2024-03-07")
	moods.add("user-a", "😢", "", "2024-03-06")
	moods.add("user-a", "😄", "", "2024-03-09")
	moods.add("user-a", "🎉", "", "2024-03-09")

	agg := services.NewAggregationService(moods)
	buckets, err := agg.Statistics(context.Background(), "user-a")
	require.NoError(t, err)

	totals := services.EmojiTotals(buckets)

	// Both views come from the same grouping; their counts must agree.
	bucketSums := make(map[string]int)
	for _, b := range buckets {
		bucketSums[b.Emoji] += b.Count
	}
	require.Len(t, totals, len(bucketSums))
	for _, tot := range totals {
		assert.Equal(t, bucketSums[tot.Emoji], tot.Count, "emoji %s", tot.Emoji)
	}
}

func TestStatisticsAcrossAllUsers(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-b", "😄", "", "2024-03-05")

	agg := services.NewAggregationService(moods)
	buckets, err := agg.Statistics(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestTrendsAreSparseAndAscending(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😢", "", "2024-03-20")
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-a", "🎉", "", "2024-03-05")

	agg := services.NewAggregationService(moods)
	series, err := agg.Trends(context.Background(), "user-a", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-05", "2024-03-20"}, series.Dates)
	assert.Equal(t, []int{2, 1}, series.Counts)
}

func TestTrendsHonorsDateWindow(t *testing.T) {
	moods := &fakeMoodStore{}
	moods.add("user-a", "😄", "", "2024-03-05")
	moods.add("user-a", "😢", "", "2024-03-20")

	from, to, err := services.ParseDateFilter("2024-03-10", "2024-03-25")
	require.NoError(t, err)

	agg := services.NewAggregationService(moods)
	series, err := agg.Trends(context.Background(), "user-a", from, to)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-20"}, series.Dates)
	assert.Equal(t, []int{1}, series.Counts)
}

func TestParseDateFilter(t *testing.T) {
	from, to, err := services.ParseDateFilter("2024-03-05", "2024-03-05")
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)

	// The end bound must cover the whole end day.
	lateEntry := time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)
	assert.True(t, !lateEntry.Before(*from) && lateEntry.Before(*to))

	_, _, err = services.ParseDateFilter("not-a-date", "")
	assert.ErrorIs(t, err, services.ErrInvalidDateRange)

	_, _, err = services.ParseDateFilter("", "2024-13-45")
	assert.ErrorIs(t, err, services.ErrInvalidDateRange)

	from, to, err = services.ParseDateFilter("", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}
