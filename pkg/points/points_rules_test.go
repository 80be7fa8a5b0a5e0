package points

import (
	"career-bridge/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePoints(t *testing.T) {
	for _, activity := range []string{"personal_form", "EDUCATION_FORM", " job_update "} {
		got, err := CalculatePoints(activity)
		require.NoError(t, err, activity)
		assert.Equal(t, 10, got, activity)
	}

	_, err := CalculatePoints("quiz_completed")
	require.ErrorIs(t, err, domain.ErrInvalidActivityType)
	assert.Equal(t, "invalid activity type: quiz_completed", err.Error())
}

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := map[int]int{
		0: 1, 9: 1, 10: 1, 49: 1,
		50: 2, 199: 2,
		200: 3, 499: 3,
		500: 4, 999: 4,
		1000: 5, 25000: 5,
	}
	for points, level := range cases {
		assert.Equal(t, level, CalculateLevel(points), "points=%d", points)
	}
}

func TestCalculateRankBoundaries(t *testing.T) {
	cases := map[int]string{
		0:    domain.RankBeginner,
		9:    domain.RankBeginner,
		10:   domain.RankStarter,
		49:   domain.RankStarter,
		50:   domain.RankRookie,
		200:  domain.RankIntermediate,
		500:  domain.RankAdvanced,
		999:  domain.RankAdvanced,
		1000: domain.RankElite,
	}
	for points, rank := range cases {
		assert.Equal(t, rank, CalculateRank(points), "points=%d", points)
	}
}

func TestNextRank(t *testing.T) {
	next, missing := NextRank(0)
	assert.Equal(t, domain.RankStarter, next)
	assert.Equal(t, 10, missing)

	next, missing = NextRank(120)
	assert.Equal(t, domain.RankIntermediate, next)
	assert.Equal(t, 80, missing)

	next, missing = NextRank(1500)
	assert.Empty(t, next)
	assert.Zero(t, missing)
}

func TestCashConversion(t *testing.T) {
	assert.Equal(t, 0.0, CashValue(0))
	assert.Equal(t, 40.0, CashValue(10))
	assert.Equal(t, 4000.0, CashValue(1000))

	assert.Equal(t, 13, PointsRequiredForAmount(50))
	assert.Equal(t, 25, PointsRequiredForAmount(100))
	assert.Equal(t, 1, PointsRequiredForAmount(0.5))
	assert.Equal(t, 26, PointsRequiredForDecimal(decimal.RequireFromString("100.01")))
}
