package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/mainloop"
)

// Help lists the commands understood by a Session.
const Help = `Type a name to search. While the confirmation is open, answer y or n.
Commands: /open N  /back  /clear  /reload  /help  /quit`

// Session is the interactive search screen. Rendering and navigation run
// on the UI loop; input may come from any goroutine.
type Session struct {
	feature   *search.Feature
	loop      *mainloop.Loop
	out       io.Writer
	render    Render
	navigator *Navigator
	router    *search.Router
	stop      func()
}

// NewSession attaches a screen to feature. Every published view state is
// rendered to out until Close.
func NewSession(feature *search.Feature, loop *mainloop.Loop, out io.Writer, render Render) *Session {
	nav := NewNavigator(out, render)
	s := &Session{
		feature:   feature,
		loop:      loop,
		out:       out,
		render:    render,
		navigator: nav,
		router:    search.NewRouter(nav),
	}
	s.stop = feature.Observe(s.show)
	return s
}

// Navigator returns the session's navigator.
func (s *Session) Navigator() *Navigator { return s.navigator }

// Close stops rendering.
func (s *Session) Close() {
	s.stop()
}

// Run reads commands from in, one per line, until EOF, /quit or ctx ends.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return err
		case line := <-lines:
			if quit := s.Handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// Handle interprets one line of input and reports whether the user asked
// to quit.
func (s *Session) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	vs := s.feature.ViewState()
	alertOpen := vs.Display != nil && vs.Display.PresentedAlert != ""

	switch {
	case line == "":
		return false
	case line == "/quit" || line == "/q":
		return true
	case line == "/help":
		s.print(Help)
	case line == "/clear":
		s.feature.Send(search.ClearSearch{})
	case line == "/reload":
		s.feature.Send(search.Load{})
	case line == "/back":
		s.onLoop(ctx, func() {
			s.navigator.Pop(true)
			s.show(s.feature.ViewState())
		})
	case strings.HasPrefix(line, "/open"):
		s.open(ctx, vs, strings.TrimSpace(strings.TrimPrefix(line, "/open")))
	case alertOpen && (line == "y" || line == "n"):
		s.feature.Send(search.ToggleAlert{Alert: vs.Display.PresentedAlert, Open: false})
		if line == "y" {
			s.feature.Send(search.SubmitSearch{})
		}
	case strings.HasPrefix(line, "/"):
		s.print(fmt.Sprintf("unknown command %q\n%s", line, Help))
	default:
		text, err := search.SanitizeText(line)
		if err != nil {
			s.print(err.Error())
			return false
		}
		s.feature.Send(search.UpdateSearchText{Text: text})
		s.feature.Send(search.ToggleAlert{Alert: search.AlertSubmitSearch, Open: true})
	}
	return false
}

func (s *Session) open(ctx context.Context, vs search.ViewState, arg string) {
	if vs.Display == nil || !vs.Display.Results.IsLoaded() {
		s.print("nothing to open yet")
		return
	}
	n, err := strconv.Atoi(arg)
	results := vs.Display.Results.Value
	if err != nil || n < 1 || n > len(results) {
		s.print(fmt.Sprintf("pick a result between 1 and %d", len(results)))
		return
	}
	item := results[n-1]
	s.onLoop(ctx, func() {
		s.router.Navigate(search.DetailEvent{Item: item})
	})
}

// show runs on the UI loop.
func (s *Session) show(vs search.ViewState) {
	if s.navigator.Top() != nil {
		return
	}
	md := Markdown(vs)
	out, err := s.render(md)
	if err != nil {
		out = md
	}
	fmt.Fprint(s.out, out)
}

func (s *Session) print(msg string) {
	s.onLoop(context.Background(), func() {
		fmt.Fprintln(s.out, msg)
	})
}

// onLoop runs fn on the UI loop, or inline once the loop has stopped.
func (s *Session) onLoop(ctx context.Context, fn func()) {
	if err := s.loop.Do(ctx, fn); errors.Is(err, mainloop.ErrStopped) {
		fn()
	}
}
