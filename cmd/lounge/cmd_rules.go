package main

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed rules/*.md
var rulesFS embed.FS

var rulesCmd = &cobra.Command{
	Use:       "rules <game>",
	Short:     "Explain how a game is played",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: games,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderRules(args[0], cfg.Display.Width, noColor)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderRules renders the embedded rules page for game.
func renderRules(game string, width int, plain bool) (string, error) {
	md, err := rulesFS.ReadFile("rules/" + game + ".md")
	if err != nil {
		return "", fmt.Errorf("no rules for %q", game)
	}

	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width-4))
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return "", fmt.Errorf("failed to render rules: %w", err)
	}
	return out, nil
}
