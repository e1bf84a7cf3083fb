package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/maxbolgarin/logze/v2"
)

type fakeTool struct {
	name    string
	present bool
	reply   string
}

func (t fakeTool) Name() string  { return t.name }
func (t fakeTool) Present() bool { return t.present }
func (t fakeTool) Invoke(_ context.Context, _ string) (string, error) {
	return t.reply, nil
}

func TestGateway_Detect_OrderedCandidates(t *testing.T) {
	g := &Gateway{log: logze.Default(), candidates: []Tool{
		fakeTool{name: "first", present: false},
		fakeTool{name: "second", present: true},
		fakeTool{name: "third", present: true},
	}}

	tool, err := g.Detect()
	if err != nil {
		t.Fatal(err)
	}
	if tool.Name() != "second" {
		t.Errorf("detected %s, want second (first present candidate)", tool.Name())
	}
}

func TestGateway_Detect_NoneFound(t *testing.T) {
	g := &Gateway{log: logze.Default(), candidates: []Tool{
		fakeTool{name: "first"},
		fakeTool{name: "second"},
	}}

	_, err := g.Detect()
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
}

func TestGateway_Invoke_ConcatenatesPromptAndPayload(t *testing.T) {
	var seen string
	tool := recordingTool{input: &seen}

	g := &Gateway{log: logze.Default()}
	if _, err := g.Invoke(context.Background(), tool, "PROMPT", "PAYLOAD"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(seen, "PROMPT") || !strings.HasSuffix(seen, "PAYLOAD") {
		t.Errorf("tool input = %q, want prompt followed by payload", seen)
	}
}

type recordingTool struct {
	input *string
}

func (t recordingTool) Name() string  { return "recording" }
func (t recordingTool) Present() bool { return true }
func (t recordingTool) Invoke(_ context.Context, input string) (string, error) {
	*t.input = input
	return "ok", nil
}

type failingTool struct {
	err error
}

func (t failingTool) Name() string  { return "failing" }
func (t failingTool) Present() bool { return true }
func (t failingTool) Invoke(context.Context, string) (string, error) {
	return "", t.err
}

func TestGateway_Invoke_ServiceErrorMatchable(t *testing.T) {
	tool := failingTool{err: &ServiceError{Tool: "failing", Stderr: "boom", Err: errors.New("exit 2")}}

	g := &Gateway{log: logze.Default()}
	_, err := g.Invoke(context.Background(), tool, "p", "d")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("err = %v, want *ServiceError", err)
	}
	if svcErr.Stderr != "boom" {
		t.Errorf("stderr = %q, want boom", svcErr.Stderr)
	}
}

func TestNew_UnknownCandidate(t *testing.T) {
	_, err := New(Config{Candidates: []string{"claude", "hal9000"}})
	if err == nil {
		t.Fatal("expected error for unknown candidate")
	}
}

func TestNew_GeminiAPIFallbackAppended(t *testing.T) {
	g, err := New(Config{GeminiAPIKey: "key"})
	if err != nil {
		t.Fatal(err)
	}
	last := g.candidates[len(g.candidates)-1]
	if last.Name() != "gemini-api" {
		t.Errorf("last candidate = %s, want gemini-api", last.Name())
	}
	if !last.Present() {
		t.Error("gemini-api with a key should be present")
	}
}

func TestCommandTool_Invoke(t *testing.T) {
	// cat echoes stdin, proving the input travels as an explicit pipe.
	tool := commandTool{name: "cat"}
	out, err := tool.Invoke(context.Background(), "hello\nworld")
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello\nworld" {
		t.Errorf("out = %q", out)
	}
}

func TestCommandTool_InvokeFailure(t *testing.T) {
	tool := commandTool{name: "false"}
	_, err := tool.Invoke(context.Background(), "input")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("err = %v, want *ServiceError", err)
	}
	if svcErr.Tool != "false" {
		t.Errorf("tool = %q", svcErr.Tool)
	}
}

func TestCommandTool_Present(t *testing.T) {
	if (commandTool{name: "definitely-not-installed-aieu"}).Present() {
		t.Error("nonexistent binary reported present")
	}
	if !(commandTool{name: "cat"}).Present() {
		t.Error("cat should be present")
	}
}
