package skinlog

import (
	"time"

	"github.com/skintrack/skintrack/internal/domain/rating"
	"github.com/skintrack/skintrack/pkg/util"
)

// windowDays returns the current-period length for a horizon.
func windowDays(horizon Horizon) int {
	switch horizon {
	case HorizonWeekly:
		return 7
	case HorizonMonthly:
		return 30
	default:
		return 1
	}
}

// TrendWindow computes the [from, to] date range covering the current and
// previous period for a horizon, ending at the given day.
func TrendWindow(horizon Horizon, today time.Time) (from, to string) {
	days := windowDays(horizon)
	start := today.AddDate(0, 0, -(2*days - 1))
	return util.DateStamp(start), util.DateStamp(today)
}

// BuildTrend splits the scores into previous and current periods, averages
// each, and reports the current period plus its delta. Scores must be
// ordered by date ascending, as returned by Repository.ListScores.
func BuildTrend(horizon Horizon, scores []DayScore, today time.Time) TrendReport {
	days := windowDays(horizon)
	currentFrom := util.DateStamp(today.AddDate(0, 0, -(days - 1)))

	var current, previous []DayScore
	for _, s := range scores {
		if s.Date >= currentFrom {
			current = append(current, s)
		} else {
			previous = append(previous, s)
		}
	}

	overall := meanScore(current)
	prior := meanScore(previous)
	return TrendReport{
		Horizon:       horizon,
		OverallScore:  overall,
		PreviousScore: prior,
		Delta:         rating.Delta(overall, prior),
		Label:         string(rating.Classify(overall)),
		Scores:        current,
	}
}

func meanScore(scores []DayScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Score
	}
	return sum / float64(len(scores))
}
