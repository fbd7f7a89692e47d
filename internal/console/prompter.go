// Package console holds the line-oriented REPL plumbing every game shares:
// prompting, centering, "press enter" pauses and paced animation.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gamelounge/internal/ui"
)

// ErrNoChoice is returned by Choose when the player declines every
// suggestion.
var ErrNoChoice = errors.New("no choice made")

// Prompter reads player input line by line and writes game output.
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	width  int
	styles ui.Styles
	pacer  Pacer
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithWidth sets the screen width used for centering.
func WithWidth(width int) Option {
	return func(p *Prompter) { p.width = width }
}

// WithStyles sets the styles used for prompts and status lines.
func WithStyles(s ui.Styles) Option {
	return func(p *Prompter) { p.styles = s }
}

// WithPacer sets the animation pacer.
func WithPacer(pacer Pacer) Option {
	return func(p *Prompter) { p.pacer = pacer }
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		width:  80,
		styles: ui.DefaultStyles(),
		pacer:  NoDelay{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the screen width.
func (p *Prompter) Width() int { return p.width }

// Styles returns the active styles.
func (p *Prompter) Styles() ui.Styles { return p.styles }

// Pacer returns the animation pacer.
func (p *Prompter) Pacer() Pacer { return p.pacer }

// Writer exposes the output stream.
func (p *Prompter) Writer() io.Writer { return p.out }

// Printf writes formatted output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Center writes text centered on the screen.
func (p *Prompter) Center(text string) {
	fmt.Fprintln(p.out, ui.Center(text, p.width))
}

// Blank writes n empty lines.
func (p *Prompter) Blank(n int) {
	fmt.Fprint(p.out, strings.Repeat("\n", n))
}

// Ask writes prompt and returns the next trimmed line. io.EOF is returned
// once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, p.styles.Prompt.Render(prompt))
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskKey returns the lower-cased first character of the answer, or "" for
// an empty line.
func (p *Prompter) AskKey(prompt string) (string, error) {
	line, err := p.Ask(prompt)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", nil
	}
	return strings.ToLower(line[:1]), nil
}

// Pause waits for the player to press enter. EOF counts as enter.
func (p *Prompter) Pause(msg string) error {
	_, err := p.Ask(msg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Choose asks until the answer is a prefix of exactly one choice. When a
// prefix matches several choices the player picks one from a numbered list;
// picking "None of the above" re-asks the original question.
func (p *Prompter) Choose(prompt string, choices []string) (string, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		candidates := MatchPrefix(answer, choices)
		switch len(candidates) {
		case 0:
			p.Println(p.styles.Error.Render("Sorry, invalid choice."))
			continue
		case 1:
			return candidates[0], nil
		}

		picked, err := p.Disambiguate(candidates)
		if errors.Is(err, ErrNoChoice) {
			continue
		}
		return picked, err
	}
}

// Disambiguate shows a numbered "Did you mean?" list and returns the
// picked entry, or ErrNoChoice for "None of the above".
func (p *Prompter) Disambiguate(candidates []string) (string, error) {
	none := len(candidates) + 1
	p.Printf("Did you mean? (1-%d)\n", none)
	for i, c := range candidates {
		p.Printf("%d %s\n", i+1, c)
	}
	p.Printf("%d None of the above\n", none)

	for {
		answer, err := p.Ask("=> ")
		if err != nil {
			return "", err
		}
		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil || n < 1 || n > none:
			p.Printf("Please enter a number from 1-%d\n", none)
		case n == none:
			return "", ErrNoChoice
		default:
			return candidates[n-1], nil
		}
	}
}

// MatchPrefix returns every choice that starts with input, ignoring case.
// An exact match wins outright. Empty input matches nothing.
func MatchPrefix(input string, choices []string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	var matches []string
	for _, c := range choices {
		lc := strings.ToLower(c)
		if lc == input {
			return []string{c}
		}
		if strings.HasPrefix(lc, input) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Pacer sleeps between animation frames.
type Pacer interface {
	Sleep(d time.Duration)
}

// NoDelay never sleeps.
type NoDelay struct{}

// Sleep implements Pacer.
func (NoDelay) Sleep(time.Duration) {}

// BaseDelay is the frame delay the games are tuned for.
const BaseDelay = 250 * time.Millisecond

// ScaledDelay sleeps for d scaled by Factor; a zero factor disables pauses.
type ScaledDelay struct {
	Factor float64
}

// NewScaledDelay returns a pacer that turns BaseDelay into delay.
func NewScaledDelay(delay time.Duration) ScaledDelay {
	return ScaledDelay{Factor: float64(delay) / float64(BaseDelay)}
}

// Sleep implements Pacer.
func (s ScaledDelay) Sleep(d time.Duration) {
	if s.Factor <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * s.Factor))
}

// Dots prints n dots, pausing before each one.
func (p *Prompter) Dots(n int, each time.Duration) {
	for i := 0; i < n; i++ {
		p.pacer.Sleep(each)
		fmt.Fprint(p.out, ".")
	}
	fmt.Fprintln(p.out)
}
