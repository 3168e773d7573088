// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Difficulty: the three fixed tiers and their constants.
//   - Outcome: classification of a single guess (correct/too-low/too-high).
//   - Attempt: one guess event.
//   - Session: a completed play-through.
//   - Turn: what the engine tells a Player before and after each guess.

package game

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Difficulty is one of the fixed tiers. The zero value is not a valid tier.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// tier holds the immutable constants attached to a Difficulty.
type tier struct {
	name        string
	rng         int // secret is drawn from 1..rng inclusive
	maxAttempts int
	basePoints  int
}

var tiers = map[Difficulty]tier{
	Easy:   {name: "EASY", rng: 10, maxAttempts: 5, basePoints: 10},
	Medium: {name: "MEDIUM", rng: 50, maxAttempts: 7, basePoints: 25},
	Hard:   {name: "HARD", rng: 100, maxAttempts: 10, basePoints: 50},
}

// Difficulties returns every tier in catalog order: Easy, Medium, Hard.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ForChoice maps menu choices 1..3 to their tier.
func ForChoice(n int) (Difficulty, bool) {
	d := Difficulty(n)
	_, ok := tiers[d]
	return d, ok
}

// Range is the inclusive upper bound of the secret; the lower bound is always 1.
func (d Difficulty) Range() int { return tiers[d].rng }

// MaxAttempts is the number of guesses allowed per session.
func (d Difficulty) MaxAttempts() int { return tiers[d].maxAttempts }

// BasePoints is the score for a first-attempt win.
func (d Difficulty) BasePoints() int { return tiers[d].basePoints }

// String returns the upper-case tier name, e.g. "EASY".
func (d Difficulty) String() string {
	if t, ok := tiers[d]; ok {
		return t.name
	}
	return "UNKNOWN"
}

// Title returns the display name, e.g. "Easy".
func (d Difficulty) Title() string {
	return cases.Title(language.English).String(strings.ToLower(d.String()))
}

// Outcome classifies a guess against the secret.
type Outcome string

const (
	Correct Outcome = "correct"
	TooLow  Outcome = "too-low"
	TooHigh Outcome = "too-high"
)

// Hint is the direction the player should move next: "higher" for TooLow,
// "lower" for TooHigh and empty for Correct.
func (o Outcome) Hint() string {
	switch o {
	case TooLow:
		return "higher"
	case TooHigh:
		return "lower"
	default:
		return ""
	}
}

// Attempt is one guess and its classification.
type Attempt struct {
	Guess   int       // The guessed number.
	Outcome Outcome   // How the guess compared to the secret.
	At      time.Time // When the guess was evaluated.
}

// Session is the result of one completed play-through.
// It is assembled once the loop ends and never mutated afterwards.
type Session struct {
	ID          string     // Unique session identifier (UUID).
	Secret      int        // The number the player had to find.
	Attempts    []Attempt  // Guesses in chronological order.
	Won         bool       // True iff the last attempt was Correct.
	Difficulty  Difficulty // Tier the session was played on.
	Points      int        // Points credited to the running score; 0 on a loss.
	CompletedAt time.Time  // When the play-through ended.
}

// Turn describes the attempt currently in play.
type Turn struct {
	Number    int // 1-based attempt number.
	Max       int // Attempts allowed in this session.
	Remaining int // Attempts left including this one.
	Range     int // Valid guesses are 1..Range.
}

// HintAvailable reports whether a directional hint makes sense after this
// attempt, i.e. there is at least one attempt still to come.
func (t Turn) HintAvailable() bool { return t.Number < t.Max }
