// internal/game/engine.go
//
// Core game engine for the number guessing game.
// Responsibilities:
//   - Draw a secret uniformly from 1..Range for the chosen tier.
//   - Ask a Player for guesses, evaluate them and keep the attempt log.
//   - Score wins with a linear decay, floored at one point.
//   - Assemble the finished Session and hand it to the Recorder.
//
// Notes:
//   - Guesses are expected to be range-checked by the Player (see internal/input).
//   - The random Source is seeded once per process by the caller; Play never reseeds.

package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// pointsPenalty is subtracted from BasePoints for every attempt after the first.
const pointsPenalty = 2

// Source yields integers uniformly in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Player supplies guesses and receives per-attempt feedback.
type Player interface {
	// Guess returns the next guess for turn. The value must already lie in
	// 1..turn.Range. An error abandons the play-through.
	Guess(turn Turn) (int, error)

	// Feedback is called once the guess has been evaluated and logged.
	Feedback(turn Turn, a Attempt)
}

// Recorder receives every completed Session exactly once.
type Recorder interface {
	Record(s Session)
}

// Engine plays sessions against a shared Source and Recorder.
type Engine struct {
	src   Source
	rec   Recorder
	now   func() time.Time
	newID func() string
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for attempt and completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDs overrides the session identifier generator.
func WithIDs(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine constructs an Engine drawing secrets from src and recording
// finished sessions into rec.
func NewEngine(src Source, rec Recorder, opts ...Option) *Engine {
	e := &Engine{
		src:   src,
		rec:   rec,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate classifies guess against secret. Any two integers are accepted.
func Evaluate(guess, secret int) Outcome {
	switch {
	case guess == secret:
		return Correct
	case guess < secret:
		return TooLow
	default:
		return TooHigh
	}
}

// Points returns the score for a win on attemptNum (1-based):
// basePoints minus 2 per extra attempt, never less than 1.
func Points(basePoints, attemptNum int) int {
	return max(1, basePoints-(attemptNum-1)*pointsPenalty)
}

// Play runs one play-through on d.
//
// The loop stops at the first Correct attempt or after d.MaxAttempts guesses.
// The finished Session is recorded before it is returned, so the running score
// and history never observe a session in progress. If the Player fails, nothing
// is recorded and the error is returned.
func (e *Engine) Play(d Difficulty, p Player) (Session, error) {
	if _, ok := tiers[d]; !ok {
		return Session{}, fmt.Errorf("game: unknown difficulty %d", int(d))
	}

	secret := e.src.IntN(d.Range()) + 1
	logger := log.With().Str("difficulty", d.String()).Logger()
	logger.Debug().Int("range", d.Range()).Int("max_attempts", d.MaxAttempts()).Msg("game started")

	attempts := make([]Attempt, 0, d.MaxAttempts())
	won, points := false, 0

	for n := 1; n <= d.MaxAttempts(); n++ {
		turn := Turn{
			Number:    n,
			Max:       d.MaxAttempts(),
			Remaining: d.MaxAttempts() - n + 1,
			Range:     d.Range(),
		}
		guess, err := p.Guess(turn)
		if err != nil {
			logger.Debug().Err(err).Int("attempt", n).Msg("game abandoned")
			return Session{}, fmt.Errorf("game: attempt %d: %w", n, err)
		}

		a := Attempt{Guess: guess, Outcome: Evaluate(guess, secret), At: e.now()}
		attempts = append(attempts, a)
		p.Feedback(turn, a)

		if a.Outcome == Correct {
			won, points = true, Points(d.BasePoints(), n)
			break
		}
	}

	s := Session{
		ID:          e.newID(),
		Secret:      secret,
		Attempts:    attempts,
		Won:         won,
		Difficulty:  d,
		Points:      points,
		CompletedAt: e.now(),
	}
	e.rec.Record(s)

	logger.Debug().
		Str("session", s.ID).
		Bool("won", s.Won).
		Int("attempts", len(s.Attempts)).
		Int("points", s.Points).
		Msg("game finished")
	return s, nil
}
