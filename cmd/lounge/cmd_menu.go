package main

import (
	"context"
	"errors"
	"io"
	"os"

	launcher "gamelounge/cmd/lounge/ui"
	"gamelounge/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// menuRunner shows the menu and returns the pick. Swapped out in tests.
var menuRunner = func(ctx context.Context, a *app) (launcher.Choice, error) {
	if isTerminal(a.in) {
		return launcher.RunMenu(ctx, a.in, a.out, a.styles, a.cfg.Display.Width)
	}
	return lineMenu(a)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// lineMenu reads the pick through the shared console when stdin is piped.
// bubbletea would read past the scanner's buffer and steal game input.
// End of input quits.
func lineMenu(a *app) (launcher.Choice, error) {
	p := a.prompter()
	p.Println(launcher.LineView(a.styles, a.cfg.Display.Width))
	for {
		k, err := p.AskKey("pick a game: ")
		if errors.Is(err, io.EOF) {
			return launcher.ChoiceQuit, nil
		}
		if err != nil {
			return launcher.ChoiceNone, err
		}
		if c := launcher.ChoiceForKey(k); c != launcher.ChoiceNone {
			return c, nil
		}
	}
}

// runMenu loops between the menu and the chosen game until the player
// quits.
func runMenu(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		log := logging.Get(logging.CategoryMenu)
		for {
			choice, err := menuRunner(ctx, a)
			if err != nil {
				return err
			}
			log.Info("menu choice", zap.Stringer("choice", choice))

			switch choice {
			case launcher.ChoiceTicTacToe:
				err = playTicTacToe(ctx, a)
			case launcher.ChoiceBlackjack:
				err = playBlackjack(ctx, a)
			case launcher.ChoiceRPS:
				err = playRPS(ctx, a)
			default:
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
}
