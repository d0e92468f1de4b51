package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stars(values ...int) []*Rating {
	out := make([]*Rating, 0, len(values))
	for _, v := range values {
		out = append(out, &Rating{BookID: 1, Stars: v})
	}
	return out
}

func TestAverage(t *testing.T) {
	cases := []struct {
		name  string
		stars []int
		want  string
	}{
		{"单条评分", []int{4}, "4.0"},
		{"整数平均", []int{4, 5, 3}, "4.0"},
		{"向上取整", []int{5, 5, 4}, "4.7"},
		{"循环小数", []int{1, 2, 2}, "1.7"},
		{"恰好一半", []int{4, 5}, "4.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Average(stars(tc.stars...))
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.StringFixed(AveragePrecision))
		})
	}
}

func TestAverage_Empty(t *testing.T) {
	assert.Nil(t, Average(nil), "没有评分时应返回nil")
	assert.Nil(t, Average([]*Rating{}))
}

func TestAverage_RoundingHalfUp(t *testing.T) {
	// 一个1分加十九个2分,平均值1.95
	got := Average(stars(1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2))
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.RequireFromString("2.0")), "got %s", got)
}

func TestAverage_JustBelowHalfRoundsDown(t *testing.T) {
	// 15001个1分加285000个2分,精确平均值1.94999...,不能先截到1.95再进位
	ratings := make([]*Rating, 0, 300001)
	for i := 0; i < 15001; i++ {
		ratings = append(ratings, &Rating{BookID: 1, Stars: 1})
	}
	for i := 0; i < 285000; i++ {
		ratings = append(ratings, &Rating{BookID: 1, Stars: 2})
	}

	got := Average(ratings)
	require.NotNil(t, got)
	assert.Equal(t, "1.9", got.StringFixed(AveragePrecision))
}
