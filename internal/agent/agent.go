// Package agent invokes a locally installed AI CLI tool as an opaque
// subprocess and extracts its delimited reply.
package agent

import (
	"context"
	"time"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

const defaultTimeout = 10 * time.Minute

// ErrToolNotFound means no candidate tool is installed on this system.
var ErrToolNotFound = errm.New("no supported AI tool found")

// Tool is one AI backend: a presence probe plus a blocking invocation that
// takes the full input text as an argument and returns the raw reply.
type Tool interface {
	Name() string
	Present() bool
	Invoke(ctx context.Context, input string) (string, error)
}

// Config represents AI tool gateway configuration.
type Config struct {
	// Candidates overrides the default tool detection order.
	Candidates []string `yaml:"candidates" env:"AGENT_CANDIDATES"`

	// GeminiAPIKey enables the Gemini API tool as a fallback candidate.
	GeminiAPIKey string `yaml:"gemini_api_key" env:"AGENT_GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model" env:"AGENT_GEMINI_MODEL"`

	Timeout time.Duration `yaml:"timeout" env:"AGENT_TIMEOUT"`
}

func (c *Config) PrepareAndValidate() error {
	c.Timeout = lang.Check(c.Timeout, defaultTimeout)
	for _, name := range c.Candidates {
		if _, ok := knownTools[name]; !ok {
			return errm.Errorf("unknown AI tool in candidates: %s", name)
		}
	}
	return nil
}

// Gateway selects a tool from an ordered candidate list and runs prompts
// through it.
type Gateway struct {
	cfg        Config
	candidates []Tool
	log        logze.Logger
}

var knownTools = map[string]func(timeout time.Duration) Tool{
	"claude": newClaude,
	"gemini": newGemini,
	"codex":  newCodex,
	"qwen":   newQwen,
}

// Detection order when the config does not override it.
var defaultOrder = []string{"claude", "gemini", "codex", "qwen"}

// New creates a gateway with the configured candidate list. The Gemini API
// tool is appended last so an installed CLI always wins over a remote call.
func New(cfg Config) (*Gateway, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}

	order := cfg.Candidates
	if len(order) == 0 {
		order = defaultOrder
	}

	g := &Gateway{
		cfg: cfg,
		log: logze.With("component", "agent"),
	}
	for _, name := range order {
		g.candidates = append(g.candidates, knownTools[name](cfg.Timeout))
	}
	if cfg.GeminiAPIKey != "" {
		g.candidates = append(g.candidates, newGeminiAPI(cfg.GeminiAPIKey, cfg.GeminiModel))
	}

	return g, nil
}

// Detect returns the first candidate tool present on the system.
func (g *Gateway) Detect() (Tool, error) {
	for _, tool := range g.candidates {
		if tool.Present() {
			g.log.Debug("detected AI tool", "tool", tool.Name())
			return tool, nil
		}
	}
	return nil, ErrToolNotFound
}

// Invoke concatenates prompt and payload and runs the tool to completion.
// The call blocks until the tool exits; there is no retry.
func (g *Gateway) Invoke(ctx context.Context, tool Tool, prompt, payload string) (string, error) {
	input := prompt + "\n\n" + payload

	g.log.Debug("invoking AI tool", "tool", tool.Name(), "input_size", len(input))

	// Tool failures come back as *ServiceError and must stay matchable
	// with errors.As, so they pass through unwrapped.
	output, err := tool.Invoke(ctx, input)
	if err != nil {
		return "", err
	}
	return output, nil
}
