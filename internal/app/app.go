// Package app wires the Gerrit client, the AI tool gateway and the review
// pipeline together behind the CLI commands.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/agent"
	"github.com/maxbolgarin/gerrev/internal/diffview"
	"github.com/maxbolgarin/gerrev/internal/gerrit"
	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/gerrev/internal/reviewer"
	"github.com/maxbolgarin/gerrev/internal/snapshot"
	"github.com/maxbolgarin/logze/v2"
)

// Gerrev is the main service holding all components.
type Gerrev struct {
	src      model.ChangeSource
	gateway  *agent.Gateway
	reviewer *reviewer.Reviewer
	loader   *diffview.Loader

	cfg Config
	log logze.Logger
}

// New creates the service from configuration.
func New(cfg Config) (*Gerrev, error) {
	service := &Gerrev{
		cfg: cfg,
		log: logze.With("component", "app"),
	}
	if err := service.init(cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}
	return service, nil
}

func (s *Gerrev) init(cfg Config) (err error) {
	s.src, err = gerrit.New(cfg.Gerrit)
	if err != nil {
		return errm.Wrap(err, "failed to create Gerrit client")
	}

	s.gateway, err = agent.New(cfg.Agent)
	if err != nil {
		return errm.Wrap(err, "failed to create AI tool gateway")
	}

	s.reviewer, err = reviewer.New(cfg.Review, s.src, s.gateway)
	if err != nil {
		return errm.Wrap(err, "failed to create reviewer")
	}

	s.loader, err = diffview.NewLoader(s.src, cfg.Review.ContextWindow)
	if err != nil {
		return errm.Wrap(err, "failed to create context loader")
	}

	return nil
}

// Close releases the service's resources.
func (s *Gerrev) Close() error {
	s.loader.Close()
	return nil
}

// RunReview executes the review pipeline for one change.
func (s *Gerrev) RunReview(ctx context.Context, changeID string, opts reviewer.Options) error {
	if err := s.reviewer.Run(ctx, changeID, opts); err != nil {
		return errm.Wrap(err, "run review")
	}
	return nil
}

// ShowChange prints the narrative view of a change.
func (s *Gerrev) ShowChange(ctx context.Context, changeID string) error {
	snap, err := snapshot.Fetch(ctx, s.src, changeID)
	if err != nil {
		return errm.Wrap(err, "fetch change snapshot")
	}
	fmt.Print(snap.NarrativeView())
	return nil
}

// ShowComments prints the inline comments of a change, each with the
// surrounding lines of the post-change file reconstructed from its diff.
func (s *Gerrev) ShowComments(ctx context.Context, changeID string) error {
	byPath, err := s.src.GetComments(ctx, changeID)
	if err != nil {
		return errm.Wrap(err, "get comments")
	}

	var comments []model.ChangeComment
	for _, list := range byPath {
		comments = append(comments, list...)
	}
	if len(comments) == 0 {
		fmt.Println("No inline comments")
		return nil
	}

	contexts := s.loader.ContextsFor(ctx, changeID, comments)

	for i, comment := range comments {
		fmt.Printf("%s:%d  %s:\n", comment.Path, comment.Line, comment.Author.String())
		printContext(contexts[i], comment.Line)
		fmt.Printf("  > %s\n\n", strings.ReplaceAll(comment.Message, "\n", "\n  > "))
	}
	return nil
}

func printContext(lc model.LineContext, line int) {
	if lc.IsEmpty() {
		return
	}
	for i, text := range lc.Before {
		fmt.Printf("  %4d | %s\n", line-len(lc.Before)+i, text)
	}
	if lc.Found {
		fmt.Printf("  %4d > %s\n", line, lc.Target)
	}
	for i, text := range lc.After {
		fmt.Printf("  %4d | %s\n", line+1+i, text)
	}
}
