// Package progress reports render progress on a terminal.
//
// On a terminal, Bar animates a github.com/schollz/progressbar bar and
// prints status messages above it. Anywhere else (pipes, files, CI logs)
// it writes one plain line per action and message, with no carriage
// returns or escape sequences.
package progress

import (
	"fmt"
	"io"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

// DefaultWidth is the number of cells between the brackets.
const DefaultWidth = 40

// labelWidth right-aligns action and info labels.
const labelWidth = 12

// theme draws `[=====>    ]`.
var theme = progressbar.Theme{
	Saucer:        "=",
	SaucerHead:    ">",
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// Bar adapts a terminal progress bar to mandel.Progress.
//
// It is not safe for concurrent use; the renderer serializes its calls.
type Bar struct {
	w           io.Writer
	width       int
	color       bool
	interactive bool
	printer     *message.Printer

	bar     *progressbar.ProgressBar
	total   int
	current int
	action  string
	status  mandel.Status
	started bool
}

// Option configures a Bar.
type Option func(*Bar)

// WithWidth sets the number of cells between the brackets.
func WithWidth(n int) Option {
	return func(b *Bar) {
		if n > 0 {
			b.width = n
		}
	}
}

// WithColor enables or disables colored labels. Colors are only ever
// written to a terminal.
func WithColor(enabled bool) Option {
	return func(b *Bar) {
		b.color = enabled
	}
}

// WithInteractive overrides terminal detection.
func WithInteractive(enabled bool) Option {
	return func(b *Bar) {
		b.interactive = enabled
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// New creates a bar writing to w. The bar animates only when w is a
// terminal.
func New(w io.Writer, opts ...Option) *Bar {
	b := &Bar{
		w:           w,
		width:       DefaultWidth,
		color:       true,
		interactive: IsTerminal(w),
		printer:     message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init implements mandel.Progress.
func (b *Bar) Init(total int) {
	b.total = max(total, 0)
	b.current = 0
	b.started = true
	b.bar = nil
	if b.interactive && b.total > 0 {
		b.bar = b.newBar()
	}
}

func (b *Bar) newBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(b.total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetWidth(b.width),
		progressbar.OptionSetTheme(theme),
		progressbar.OptionSetDescription(b.label(b.action, b.status)),
		progressbar.OptionEnableColorCodes(b.colored()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// SetAction implements mandel.Progress.
func (b *Bar) SetAction(action string, status mandel.Status) {
	b.action = action
	b.status = status
	if !b.started {
		return
	}
	if b.bar != nil {
		b.bar.Describe(b.label(action, status))
		return
	}
	if !b.interactive {
		fmt.Fprintf(b.w, "%s %s\n", b.label(action, status), b.counts())
	}
}

// Increment implements mandel.Progress.
func (b *Bar) Increment() {
	if !b.started || b.current >= b.total {
		return
	}
	b.current++
	if b.bar == nil {
		return
	}
	_ = b.bar.Add(1)
	if b.bar.IsFinished() {
		// Keep the full bar on screen; later messages go below it.
		fmt.Fprintln(b.w)
		b.bar = nil
	}
}

// Info prints a message on its own line above the bar.
func (b *Bar) Info(label, msg string, status mandel.Status) {
	if b.bar != nil {
		_ = b.bar.Clear()
	}
	fmt.Fprintf(b.w, "%s %s\n", colorstring.Color(b.label(label, status)), msg)
	if b.bar != nil {
		_ = b.bar.RenderBlank()
	}
}

// Finish ends the bar. Off a terminal it prints a final count line.
func (b *Bar) Finish() {
	if !b.started {
		return
	}
	switch {
	case b.bar != nil:
		fmt.Fprintln(b.w)
	case !b.interactive:
		fmt.Fprintf(b.w, "%s %s (%d%%)\n", b.label(b.action, b.status), b.counts(), b.percent())
	}
	b.bar = nil
	b.started = false
}

// Current returns the number of completed units.
func (b *Bar) Current() int {
	return b.current
}

// Total returns the number of units passed to Init.
func (b *Bar) Total() int {
	return b.total
}

func (b *Bar) colored() bool {
	return b.color && b.interactive
}

func (b *Bar) counts() string {
	return b.printer.Sprintf("%d/%d", b.current, b.total)
}

func (b *Bar) percent() int {
	if b.total == 0 {
		return 0
	}
	return b.current * 100 / b.total
}

// label right-aligns s and, on a colored terminal, tags it with
// colorstring codes for status.
func (b *Bar) label(s string, status mandel.Status) string {
	padded := fmt.Sprintf("%*s", labelWidth, s)
	if !b.colored() {
		return padded
	}
	return "[bold]" + statusColor(status) + padded + "[reset]"
}

func statusColor(s mandel.Status) string {
	switch s {
	case mandel.StatusSuccess:
		return "[green]"
	case mandel.StatusFailure:
		return "[red]"
	default:
		return "[blue]"
	}
}

var _ mandel.Progress = (*Bar)(nil)
