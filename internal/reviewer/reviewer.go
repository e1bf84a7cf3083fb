// Package reviewer runs the two-stage AI review pipeline over one change:
// inline comments first, then an overall narrative comment.
package reviewer

import (
	"bufio"
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gerrev/internal/agent"
	"github.com/maxbolgarin/gerrev/internal/diffview"
	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Gateway is the slice of the AI tool gateway the pipeline depends on.
type Gateway interface {
	Detect() (agent.Tool, error)
	Invoke(ctx context.Context, tool agent.Tool, prompt, payload string) (string, error)
}

// Config represents review behavior configuration.
type Config struct {
	ContextWindow int  `yaml:"context_window" env:"REVIEW_CONTEXT_WINDOW"`
	Verbose       bool `yaml:"verbose" env:"REVIEW_VERBOSE"`
}

func (c *Config) PrepareAndValidate() error {
	c.ContextWindow = lang.Check(c.ContextWindow, diffview.DefaultWindow)
	if c.ContextWindow < 0 {
		return erro.New("context window must not be negative: %d", c.ContextWindow)
	}
	return nil
}

// Options are the per-run knobs of the pipeline.
type Options struct {
	// Post actually submits the review; otherwise the run is a dry run
	// that only displays what would be sent.
	Post bool
	// AutoConfirm skips the interactive confirmation before posting.
	AutoConfirm bool
	// Debug prints raw tool output when response extraction fails.
	Debug bool
	// PromptPath overrides the built-in inline review prompt.
	PromptPath string
}

// Reviewer sequences detection, generation, reconciliation and posting.
type Reviewer struct {
	src model.ChangeSource
	gw  Gateway

	cfg Config
	log logze.Logger

	// Confirmation prompts read from in and progress goes to out; tests
	// swap both.
	in  io.Reader
	out io.Writer

	// answers wraps in exactly once; a scanner buffers ahead, so building
	// a new one per prompt would drop already-read answers.
	answers *bufio.Scanner
}

// New creates a reviewer.
func New(cfg Config, src model.ChangeSource, gw Gateway) (*Reviewer, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}
	return &Reviewer{
		src: src,
		gw:  gw,
		cfg: cfg,
		log: logze.With("component", "reviewer"),
		in:  os.Stdin,
		out: os.Stdout,
	}, nil
}
