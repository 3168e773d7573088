package cli

import (
	"strings"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/stats"
)

// recentTimeFormat renders completion times in the recent-games list.
const recentTimeFormat = "Jan 02 15:04"

func rule(s string, n int) string { return strings.Repeat(s, n) }

func (a *App) showMenu() {
	a.printf("\n%s MAIN MENU\n", a.icons.menu)
	a.printf("Current Score: %d\n", a.store.TotalScore())
	a.printf("%s\n", rule("-", 30))
	for i, d := range game.Difficulties() {
		a.printf("%d. %s %s (1-%d, %d attempts, %d points)\n",
			i+1, a.icons.tiers[d], d.Title(), d.Range(), d.MaxAttempts(), d.BasePoints())
	}
	a.printf("%d. %s View Statistics\n", choiceStats, a.icons.stats)
	a.printf("%d. %s Exit\n", choiceExit, a.icons.exit)
	a.printf("Choose an option (%d-%d): ", choiceEasy, choiceExit)
}

func (a *App) showGameBanner(d game.Difficulty) {
	a.printf("\n%s Starting %s Game!\n", a.icons.target, d.String())
	a.printf("Range: 1-%d\n", d.Range())
	a.printf("Attempts: %d\n", d.MaxAttempts())
	a.printf("Potential Points: %d\n", d.BasePoints())
	a.printf("%s\n", rule("-", 40))
}

func (a *App) showTurn(t game.Turn) {
	a.printf("\n%s Attempt %d/%d (Attempts left: %d)\n", a.icons.location, t.Number, t.Max, t.Remaining)
	a.printf("Enter your guess (1-%d): ", t.Range)
}

func (a *App) showFeedback(t game.Turn, at game.Attempt) {
	a.printf("%s %s!\n", a.icons.outcome(at.Outcome), outcomeLabel(at.Outcome))
	if at.Outcome != game.Correct && t.HintAvailable() {
		a.printf("%s The number is %s than %d\n", a.icons.hint, at.Outcome.Hint(), at.Guess)
	}
}

func (a *App) showResult(s game.Session) {
	if s.Won {
		a.printf("\n%s CONGRATULATIONS! You won!\n", a.icons.trophy)
		a.printf("%s Points earned: %d\n", a.icons.sparkle, s.Points)
		a.printf("%s Total score: %d\n", a.icons.target, a.store.TotalScore())
		return
	}
	a.printf("\n%s Game Over!\n", a.icons.lost)
	a.printf("%s The secret number was: %d\n", a.icons.target, s.Secret)
	a.printf("%s Total score: %d\n", a.icons.stats, a.store.TotalScore())
}

func (a *App) showSummary(s game.Session) {
	a.printf("\n%s GAME SUMMARY\n", a.icons.summary)
	a.printf("%s\n", rule("-", 30))
	a.printf("%s Secret Number: %d\n", a.icons.target, s.Secret)
	a.printf("%s Total Attempts: %d\n", a.icons.score, len(s.Attempts))
	a.printf("%s Result: %s\n", a.icons.trophy, resultLabel(s.Won))

	a.printf("\n%s Attempt History:\n", a.icons.history)
	for i, at := range s.Attempts {
		a.printf("  %d. %s %d - %s\n", i+1, a.icons.outcome(at.Outcome), at.Guess, outcomeLabel(at.Outcome))
	}
}

// showStatistics renders the aggregate report. An empty history prints a
// hint and returns without pausing.
func (a *App) showStatistics() error {
	r := stats.Compute(a.store.All(), a.store.TotalScore())

	a.printf("\n%s GAME STATISTICS\n", a.icons.stats)
	a.printf("%s\n", rule("=", 40))

	if r.Empty {
		a.printf("No games played yet. Start playing to see statistics!\n")
		return nil
	}

	a.printf("%s Total Score: %d\n", a.icons.trophy, r.TotalScore)
	a.printf("%s Games Played: %d\n", a.icons.played, r.TotalGames)
	a.printf("%s Games Won: %d\n", a.icons.won, r.GamesWon)
	a.printf("%s Win Rate: %.1f%%\n", a.icons.rate, r.WinRate)
	a.printf("%s Average Attempts: %.1f\n", a.icons.speed, r.AvgAttempts)
	a.printf("%s Best Streak: %d\n", a.icons.streak, r.BestStreak)

	a.printf("\n%s Performance by Difficulty:\n", a.icons.stats)
	for _, t := range r.ByDifficulty {
		a.printf("  %s %s: %d/%d (%.1f%%, avg %.1f attempts)\n",
			a.icons.tiers[t.Difficulty], t.Difficulty.String(), t.Wins, t.Games, t.WinRate, t.AvgAttempts)
	}

	a.printf("\n%s Recent Games (Last %d):\n", a.icons.clock, stats.RecentLimit)
	for _, s := range r.Recent {
		a.printf("  %s %s %s - %d attempts (%s)\n",
			a.icons.result(s.Won), a.icons.tiers[s.Difficulty], s.Difficulty.String(),
			len(s.Attempts), s.CompletedAt.Format(recentTimeFormat))
	}

	return a.pause()
}

func outcomeLabel(o game.Outcome) string {
	switch o {
	case game.Correct:
		return "CORRECT"
	case game.TooLow:
		return "TOO LOW"
	case game.TooHigh:
		return "TOO HIGH"
	default:
		return "UNKNOWN"
	}
}

func resultLabel(won bool) string {
	if won {
		return "WON"
	}
	return "LOST"
}
