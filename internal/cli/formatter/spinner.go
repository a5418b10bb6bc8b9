package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner shows progress on one terminal line while a plain cobra command
// (outside the TUI) waits on the case gateway. It uses the same frames as
// the TUI loading page.
type Spinner struct {
	out     io.Writer
	style   spinner.Spinner
	message string

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		style:   spinner.Dot,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	frames := s.style.Frames
	for i := 0; ; i++ {
		fmt.Fprintf(s.out, "\r  %s %s", StylePurple.Render(frames[i%len(frames)]), Dim(s.message))
		select {
		case <-s.stop:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-time.After(s.style.FPS):
		}
	}
}

// Stop clears the line and waits for the animation to end. Later calls are
// no-ops.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
	})
}

// StartSpinner starts a spinner and returns its Stop.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message)
	s.Start()
	return s.Stop
}
