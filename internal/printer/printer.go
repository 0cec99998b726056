// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/taskboard/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human-readable command output.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = prefix + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf prints a plain line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", format, args...)
}

// Successf prints a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render("✔"), format, args...)
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle.Render(styles.IconNotifyInfo), format, args...)
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render(styles.IconNotifyWarning), format, args...)
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render(styles.IconNotifyError), format, args...)
}

// Section prints a header followed by a divider.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.w, styles.DividerStyle.Render("────────────────────────"))
}
