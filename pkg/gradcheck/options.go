// Package gradcheck provides degree-checklist extraction from HTML documents.
package gradcheck

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/parser"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/rules"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts rows only (no summary, rule summary or reclassification).
	ModeLight Mode = "light"
	// ModeStandard extracts rows, the header summary and, with rules, the rule
	// summary and the sub-domain reclassification.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally keeps positional cell texts and attempt colours.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), true
	}
	return "", false
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// Rules holds bucket and reclassification settings. Nil disables both.
	Rules *rules.Config
	// Locator overrides the table selection chain.
	// If nil, parser.DefaultLocatorParams is used.
	Locator *parser.LocatorParams
	// IncludeCells specifies whether to keep positional cell texts.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeCells *bool
	// Logger receives stage-level debug events. If nil, nothing is logged.
	Logger *zerolog.Logger
	// Now stamps the rule summary. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeCells returns whether to keep positional cell texts.
func (o Options) ShouldIncludeCells() bool {
	if o.IncludeCells != nil {
		return *o.IncludeCells
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeSummary returns whether the header summary and the rules run.
func (o Options) ShouldIncludeSummary() bool {
	return o.Mode != ModeLight
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) locator() parser.LocatorParams {
	if o.Locator != nil {
		return *o.Locator
	}
	return parser.DefaultLocatorParams()
}
