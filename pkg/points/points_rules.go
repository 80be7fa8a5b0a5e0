package points

import (
	"career-bridge/domain"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var activityAwards = map[string]int{
	domain.ActivityPersonalForm:    domain.PointsPerForm,
	domain.ActivityEducationForm:   domain.PointsPerForm,
	domain.ActivityJobForm:         domain.PointsPerForm,
	domain.ActivityPersonalUpdate:  domain.PointsPerForm,
	domain.ActivityEducationUpdate: domain.PointsPerForm,
	domain.ActivityJobUpdate:       domain.PointsPerForm,
}

var rankThresholds = []struct {
	min  int
	rank string
}{
	{1000, domain.RankElite},
	{500, domain.RankAdvanced},
	{200, domain.RankIntermediate},
	{50, domain.RankRookie},
	{10, domain.RankStarter},
	{0, domain.RankBeginner},
}

func activityKey(activityType string) string {
	return strings.ToLower(strings.TrimSpace(activityType))
}

// CalculatePoints returns the fixed award for an activity type.
func CalculatePoints(activityType string) (int, error) {
	award, ok := activityAwards[activityKey(activityType)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidActivityType, activityType)
	}
	return award, nil
}

func CalculateLevel(points int) int {
	switch {
	case points >= 1000:
		return 5
	case points >= 500:
		return 4
	case points >= 200:
		return 3
	case points >= 50:
		return 2
	default:
		return 1
	}
}

func CalculateRank(points int) string {
	for _, t := range rankThresholds {
		if points >= t.min {
			return t.rank
		}
	}
	return domain.RankBeginner
}

// NextRank returns the rank above the current one and how many points are
// missing to reach it. Elite has no next rank.
func NextRank(points int) (string, int) {
	next := ""
	missing := 0
	for _, t := range rankThresholds {
		if points >= t.min {
			break
		}
		next = t.rank
		missing = t.min - points
	}
	return next, missing
}

func CashValue(points int) float64 {
	return decimal.NewFromInt(int64(points)).
		Mul(decimal.NewFromFloat(domain.CashValuePerPoint)).
		InexactFloat64()
}

func PointsRequiredForAmount(amount float64) int {
	return PointsRequiredForDecimal(decimal.NewFromFloat(amount))
}

func PointsRequiredForDecimal(amount decimal.Decimal) int {
	return int(amount.
		Div(decimal.NewFromFloat(domain.CashValuePerPoint)).
		Ceil().
		IntPart())
}
