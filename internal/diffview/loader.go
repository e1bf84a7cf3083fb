package diffview

import (
	"context"
	"sync"

	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"
)

const defaultPoolSize = 32

// Loader fetches file diffs and extracts line context for many comments at
// once. Extractions are independent, so they run in parallel on a pool.
type Loader struct {
	src    model.ChangeSource
	pool   *ants.Pool
	window int
	log    logze.Logger
}

// NewLoader creates a context loader with the given window size.
func NewLoader(src model.ChangeSource, window int) (*Loader, error) {
	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Loader{
		src:    src,
		pool:   pool,
		window: window,
		log:    logze.With("component", "diffview"),
	}, nil
}

// Close releases the underlying pool.
func (l *Loader) Close() {
	l.pool.Release()
}

// ContextsFor returns one LineContext per comment, in input order. A fetch
// failure for one comment degrades to an empty context for that comment
// only; the others are unaffected.
func (l *Loader) ContextsFor(ctx context.Context, changeID string, comments []model.ChangeComment) []model.LineContext {
	out := make([]model.LineContext, len(comments))

	var wg sync.WaitGroup
	for i, comment := range comments {
		if comment.Line <= 0 || comment.Path == "" {
			continue
		}

		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			out[i] = l.contextFor(ctx, changeID, comment)
		})
		if err != nil {
			wg.Done()
			l.log.Err(err, "cannot submit context task", "path", comment.Path)
		}
	}
	wg.Wait()

	return out
}

func (l *Loader) contextFor(ctx context.Context, changeID string, comment model.ChangeComment) model.LineContext {
	hunks, err := l.src.GetFileDiff(ctx, changeID, comment.Path)
	if err != nil {
		l.log.Debug("cannot fetch file diff for context",
			"change", changeID, "path", comment.Path, "error", err)
		return model.LineContext{}
	}
	return ExtractContext(hunks, comment.Line, l.window)
}
