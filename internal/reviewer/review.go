package reviewer

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/agent"
	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/gerrev/internal/reviewer/prompts"
	"github.com/maxbolgarin/gerrev/internal/snapshot"
)

// Run executes the review pipeline over one change. The stages are strictly
// sequential: Detect, Snapshot, Generate, Reconcile, Confirm, Post, then the
// same generation and posting for the overall comment. A fatal failure
// aborts the remaining stages but never undoes an already posted review.
func (r *Reviewer) Run(ctx context.Context, changeID string, opts Options) error {
	timer := abstract.StartTimer()
	log := r.log.WithFields("change", changeID)

	// Gateway and parse errors carry their own context and must stay
	// matchable with errors.Is/As, so they pass through unwrapped.
	tool, err := r.gw.Detect()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Using AI tool: %s\n", tool.Name())

	log.InfoIf(r.cfg.Verbose, "fetching change snapshot")
	snap, err := snapshot.Fetch(ctx, r.src, changeID)
	if err != nil {
		return errm.Wrap(err, "fetch change snapshot")
	}
	fmt.Fprintf(r.out, "Reviewing change %d: %s\n", snap.Change.Number, snap.Change.Subject)

	if err := r.runInlineStage(ctx, tool, snap, changeID, opts); err != nil {
		return err
	}
	if err := r.runOverallStage(ctx, tool, snap, changeID, opts); err != nil {
		return err
	}

	log.Info("review finished", "elapsed_time", timer.ElapsedTime().String())
	return nil
}

func (r *Reviewer) runInlineStage(ctx context.Context, tool agent.Tool, snap *snapshot.Snapshot, changeID string, opts Options) error {
	log := r.log.WithFields("change", changeID, "stage", "inline")

	prompt, err := prompts.InlineReview(opts.PromptPath)
	if err != nil {
		return errm.Wrap(err, "build inline prompt")
	}

	log.InfoIf(r.cfg.Verbose, "generating inline comments", "tool", tool.Name())
	raw, err := r.gw.Invoke(ctx, tool, prompt, snap.StructuredView())
	if err != nil {
		return err
	}

	drafts, err := r.parseDrafts(raw, opts)
	if err != nil {
		return err
	}

	reconciled, dropped := reconcileDrafts(drafts, snap.Files, log)
	if dropped > 0 {
		fmt.Fprintf(r.out, "Dropped %d invalid comment draft(s)\n", dropped)
	}
	if len(reconciled) == 0 {
		fmt.Fprintln(r.out, "No inline comments suggested")
		return nil
	}

	r.printDrafts(reconciled)

	payload := buildPayload(reconciled)
	if !opts.Post {
		fmt.Fprintf(r.out, "Dry run: would post %d inline comment(s) to %d file(s)\n",
			countComments(payload), len(payload))
		return nil
	}

	question := fmt.Sprintf("Post %d inline comment(s)?", countComments(payload))
	if !r.confirm(opts, question) {
		fmt.Fprintln(r.out, "Skipped posting inline comments")
		return nil
	}

	if err := r.src.SetReview(ctx, changeID, model.ReviewInput{Comments: payload}); err != nil {
		return &SubmissionError{
			ChangeID: changeID,
			Files:    len(payload),
			Comments: countComments(payload),
			Err:      err,
		}
	}
	fmt.Fprintln(r.out, "Posted inline comments")
	return nil
}

func (r *Reviewer) runOverallStage(ctx context.Context, tool agent.Tool, snap *snapshot.Snapshot, changeID string, opts Options) error {
	log := r.log.WithFields("change", changeID, "stage", "overall")

	log.InfoIf(r.cfg.Verbose, "generating overall comment", "tool", tool.Name())
	raw, err := r.gw.Invoke(ctx, tool, prompts.Overall(), snap.NarrativeView())
	if err != nil {
		return err
	}

	message, err := r.extract(raw, opts)
	if err != nil {
		return err
	}
	if message == "" {
		fmt.Fprintln(r.out, "No overall comment suggested")
		return nil
	}

	fmt.Fprintf(r.out, "\nOverall comment:\n%s\n\n", message)

	if !opts.Post {
		fmt.Fprintln(r.out, "Dry run: would post the overall comment")
		return nil
	}
	if !r.confirm(opts, "Post the overall comment?") {
		fmt.Fprintln(r.out, "Skipped posting the overall comment")
		return nil
	}

	if err := r.src.SetReview(ctx, changeID, model.ReviewInput{Message: message}); err != nil {
		return &SubmissionError{ChangeID: changeID, Err: err}
	}
	fmt.Fprintln(r.out, "Posted overall comment")
	return nil
}

// extract pulls the delimited block out of raw tool output, printing the
// raw output under the debug flag when no block is found.
func (r *Reviewer) extract(raw string, opts Options) (string, error) {
	extracted, err := agent.ExtractResponse(raw)
	if err != nil {
		if opts.Debug {
			fmt.Fprintf(r.out, "--- raw tool output ---\n%s\n--- end ---\n", raw)
		}
		return "", err
	}
	return extracted, nil
}

// parseDrafts extracts the response block and decodes it as an array of
// comment drafts. Tools occasionally wrap the array in a markdown fence or
// prepend chatter; only the outermost array is decoded.
func (r *Reviewer) parseDrafts(raw string, opts Options) ([]model.CommentDraft, error) {
	extracted, err := r.extract(raw, opts)
	if err != nil {
		return nil, err
	}

	cleaned := strings.TrimSpace(extracted)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		if opts.Debug {
			fmt.Fprintf(r.out, "--- raw tool output ---\n%s\n--- end ---\n", raw)
		}
		return nil, &agent.ResponseParseError{Raw: raw}
	}

	var drafts []model.CommentDraft
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &drafts); err != nil {
		if opts.Debug {
			fmt.Fprintf(r.out, "--- raw tool output ---\n%s\n--- end ---\n", raw)
		}
		return nil, &agent.ResponseParseError{Raw: raw}
	}
	return drafts, nil
}

func (r *Reviewer) printDrafts(drafts []model.CommentDraft) {
	fmt.Fprintf(r.out, "\nSuggested inline comments (%d):\n", len(drafts))
	for _, draft := range drafts {
		location := fmt.Sprintf("%s:%d", draft.File, draft.Line)
		if draft.Range != nil {
			location = fmt.Sprintf("%s:%d-%d", draft.File, draft.Range.StartLine, draft.Range.EndLine)
		}
		fmt.Fprintf(r.out, "  %s\n    %s\n", location, draft.Message)
	}
	fmt.Fprintln(r.out)
}

// confirm blocks on a yes/no read from the input stream. Declining is a
// normal negative outcome, not an error.
func (r *Reviewer) confirm(opts Options, question string) bool {
	if opts.AutoConfirm {
		return true
	}

	fmt.Fprintf(r.out, "%s [y/N]: ", question)
	if r.answers == nil {
		r.answers = bufio.NewScanner(r.in)
	}
	if !r.answers.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(r.answers.Text()))
	return answer == "y" || answer == "yes"
}
