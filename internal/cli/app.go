// internal/cli/app.go
//
// Terminal front end for the guessing game.
// Responsibilities:
//   - Main menu loop: play Easy/Medium/Hard, view statistics, exit.
//   - Drive game.Engine through a terminal Player backed by internal/input.
//   - Render results, game summaries and statistics.
//
// Notes:
//   - End of input is treated like choosing Exit.
//   - Sessions are read back from the store only after Engine.Play returns,
//     so statistics never include a game in progress.

package cli

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/input"
	"github.com/robalobadob/numguess/internal/store"
)

// Menu choices.
const (
	choiceEasy = iota + 1
	choiceMedium
	choiceHard
	choiceStats
	choiceExit
)

// App is the interactive menu loop.
type App struct {
	engine *game.Engine
	store  store.Store
	in     *input.Reader
	out    io.Writer
	p      *message.Printer
	icons  icons
}

// New wires an App. When fancy is false only ASCII markers are printed.
func New(engine *game.Engine, st store.Store, in io.Reader, out io.Writer, fancy bool) *App {
	a := &App{
		engine: engine,
		store:  st,
		in:     input.NewReader(in, out),
		out:    out,
		p:      message.NewPrinter(language.English),
		icons:  plainIcons,
	}
	if fancy {
		a.icons = emojiIcons
	}
	return a
}

// Run shows the menu until the player exits or input ends and returns the
// final score. Only read failures other than end of input are returned as errors.
func (a *App) Run() (int, error) {
	a.printf("%s Welcome to the Number Guessing Game! %s\n", a.icons.target, a.icons.target)
	a.printf("%s\n", rule("=", 50))

	for {
		a.showMenu()
		choice, err := a.in.ReadInt(choiceEasy, choiceExit)
		if err != nil {
			return a.exit(err)
		}

		switch choice {
		case choiceEasy, choiceMedium, choiceHard:
			d, _ := game.ForChoice(choice)
			if err := a.play(d); err != nil {
				return a.exit(err)
			}
		case choiceStats:
			if err := a.showStatistics(); err != nil {
				return a.exit(err)
			}
		case choiceExit:
			return a.exit(nil)
		}
	}
}

// exit prints the farewell line. End of input counts as a normal exit.
func (a *App) exit(err error) (int, error) {
	score := a.store.TotalScore()
	if err != nil && !errors.Is(err, io.EOF) {
		log.Error().Err(err).Msg("input failed")
		return score, err
	}
	a.printf("\nThanks for playing! Final Score: %d\n", score)
	log.Info().Int("score", score).Int("games", a.store.Len()).Msg("exiting")
	return score, nil
}

func (a *App) play(d game.Difficulty) error {
	a.showGameBanner(d)

	s, err := a.engine.Play(d, &terminalPlayer{in: a.in, app: a})
	if err != nil {
		return err
	}

	a.showResult(s)
	a.showSummary(s)
	return a.pause()
}

func (a *App) pause() error {
	a.printf("\nPress Enter to continue...")
	return a.in.WaitForEnter()
}

func (a *App) printf(format string, args ...any) {
	_, _ = a.p.Fprintf(a.out, format, args...)
}

// terminalPlayer adapts the input reader and renderer to game.Player.
type terminalPlayer struct {
	in  *input.Reader
	app *App
}

func (t *terminalPlayer) Guess(turn game.Turn) (int, error) {
	t.app.showTurn(turn)
	return t.in.ReadInt(1, turn.Range)
}

func (t *terminalPlayer) Feedback(turn game.Turn, at game.Attempt) {
	t.app.showFeedback(turn, at)
}
