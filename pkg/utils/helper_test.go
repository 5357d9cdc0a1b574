package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "rupees per hour", input: "₹500/hour", want: 500},
		{name: "rupees per hr", input: "₹349/hr", want: 349},
		{name: "plain", input: "250", want: 250},
		{name: "no digits", input: "free", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "thousands separator", input: "₹1,250", want: 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDigits(tt.input))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 20, ParseInt("", 20))
	assert.Equal(t, 20, ParseInt("abc", 20))
	assert.Equal(t, 20, ParseInt("0", 20))
	assert.Equal(t, 5, ParseInt("5", 20))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 4.7, RoundTo(4.66, 1))
	assert.Equal(t, 4.3, RoundTo(4.3, 1))
	assert.Equal(t, 2.0, RoundTo(1.96, 1))
}

func TestWait_Elapses(t *testing.T) {
	start := time.Now()
	err := Wait(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWait_ZeroDuration(t *testing.T) {
	require.NoError(t, Wait(context.Background(), 0))
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))

	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(25, 20, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = PageBounds(5, 40, 10)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end = PageBounds(0, 0, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
