package cli

import "github.com/robalobadob/numguess/internal/game"

// icons holds the decorative markers used in terminal output.
type icons struct {
	target, menu, stats, exit, trophy, lost, hint string
	location, sparkle, summary, history, score    string
	won, played, rate, speed, streak, clock       string
	correct, low, high                            string
	tiers                                         map[game.Difficulty]string
}

var emojiIcons = icons{
	target: "🎯", menu: "🎮", stats: "📊", exit: "🚪", trophy: "🏆", lost: "💔", hint: "💡 Hint:",
	location: "📍", sparkle: "✨", summary: "📋", history: "📝", score: "🔢",
	won: "✅", played: "🎮", rate: "📈", speed: "⚡", streak: "🔥", clock: "🕒",
	correct: "✅", low: "📈", high: "📉",
	tiers: map[game.Difficulty]string{game.Easy: "🟢", game.Medium: "🟡", game.Hard: "🔴"},
}

var plainIcons = icons{
	target: "*", menu: "*", stats: "*", exit: "*", trophy: "[W]", lost: "[L]", hint: "Hint:",
	location: ">", sparkle: "+", summary: "*", history: "*", score: "#",
	won: "+", played: "#", rate: "%", speed: "~", streak: "!", clock: "*",
	correct: "[=]", low: "[<]", high: "[>]",
	tiers: map[game.Difficulty]string{game.Easy: "[E]", game.Medium: "[M]", game.Hard: "[H]"},
}

// outcome returns the marker for an attempt outcome.
func (i icons) outcome(o game.Outcome) string {
	switch o {
	case game.Correct:
		return i.correct
	case game.TooLow:
		return i.low
	case game.TooHigh:
		return i.high
	default:
		return "?"
	}
}

// result returns the marker for a won or lost session.
func (i icons) result(won bool) string {
	if won {
		return i.trophy
	}
	return i.lost
}
