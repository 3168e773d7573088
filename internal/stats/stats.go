// internal/stats/stats.go
//
// Read-only aggregation over the session history.
// Responsibilities:
//   - Overall totals: games, wins, win rate, average attempts, best win streak.
//   - Per-difficulty breakdown in catalog order (tiers without games omitted).
//   - Recent games: the chronological tail of the history.
//
// Compute never mutates its input. An empty history yields Report.Empty and
// skips every division.

package stats

import (
	"github.com/samber/lo"

	"github.com/robalobadob/numguess/internal/game"
)

// RecentLimit is the maximum number of sessions in Report.Recent.
const RecentLimit = 5

// TierStats summarises the sessions played on one difficulty.
type TierStats struct {
	Difficulty  game.Difficulty
	Games       int
	Wins        int
	WinRate     float64 // percentage, 0..100
	AvgAttempts float64
}

// Report is the aggregate view of a history.
type Report struct {
	Empty        bool // no sessions recorded; numeric fields are zero
	TotalScore   int
	TotalGames   int
	GamesWon     int
	WinRate      float64 // percentage, 0..100
	AvgAttempts  float64
	BestStreak   int
	ByDifficulty []TierStats
	Recent       []game.Session // oldest first
}

// Compute builds a Report from sessions in chronological order.
func Compute(sessions []game.Session, totalScore int) Report {
	r := Report{TotalScore: totalScore}
	if len(sessions) == 0 {
		r.Empty = true
		return r
	}

	r.TotalGames = len(sessions)
	r.GamesWon = countWins(sessions)
	r.WinRate = rate(r.GamesWon, r.TotalGames)
	r.AvgAttempts = avgAttempts(sessions)
	r.BestStreak = bestStreak(sessions)

	for _, d := range game.Difficulties() {
		played := lo.Filter(sessions, func(s game.Session, _ int) bool {
			return s.Difficulty == d
		})
		if len(played) == 0 {
			continue
		}
		wins := countWins(played)
		r.ByDifficulty = append(r.ByDifficulty, TierStats{
			Difficulty:  d,
			Games:       len(played),
			Wins:        wins,
			WinRate:     rate(wins, len(played)),
			AvgAttempts: avgAttempts(played),
		})
	}

	r.Recent = lo.Subset(sessions, -RecentLimit, RecentLimit)
	return r
}

func countWins(sessions []game.Session) int {
	return lo.CountBy(sessions, func(s game.Session) bool { return s.Won })
}

// avgAttempts is the mean attempt count; 0 for an empty slice.
func avgAttempts(sessions []game.Session) float64 {
	return lo.MeanBy(sessions, func(s game.Session) float64 {
		return float64(len(s.Attempts))
	})
}

// rate returns 100*n/total. Callers guarantee total > 0.
func rate(n, total int) float64 {
	return float64(n) / float64(total) * 100
}

// bestStreak is the longest run of consecutive wins.
func bestStreak(sessions []game.Session) int {
	best, cur := 0, 0
	for _, s := range sessions {
		if !s.Won {
			cur = 0
			continue
		}
		cur++
		best = max(best, cur)
	}
	return best
}
