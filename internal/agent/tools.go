package agent

import "time"

// One constructor per supported CLI tool. Each runs the tool in its
// non-interactive mode with the prompt delivered on stdin.

func newClaude(timeout time.Duration) Tool {
	return commandTool{name: "claude", args: []string{"-p"}, timeout: timeout}
}

func newGemini(timeout time.Duration) Tool {
	return commandTool{name: "gemini", timeout: timeout}
}

func newCodex(timeout time.Duration) Tool {
	return commandTool{name: "codex", args: []string{"exec"}, timeout: timeout}
}

func newQwen(timeout time.Duration) Tool {
	return commandTool{name: "qwen", timeout: timeout}
}
