package main

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gerrev/internal/app"
	"github.com/maxbolgarin/gerrev/internal/reviewer"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	debug      = kingpin.Flag("debug", "print raw tool output on parse failures").Bool()

	reviewCmd    = kingpin.Command("review", "run an AI review of a change")
	reviewChange = reviewCmd.Arg("change", "change number or ID").Required().String()
	reviewPost   = reviewCmd.Flag("post", "post the review instead of a dry run").Bool()
	reviewYes    = reviewCmd.Flag("yes", "skip interactive confirmation before posting").Short('y').Bool()
	reviewPrompt = reviewCmd.Flag("prompt", "path to a custom review prompt").String()

	commentsCmd    = kingpin.Command("comments", "show inline comments of a change with line context")
	commentsChange = commentsCmd.Arg("change", "change number or ID").Required().String()

	showCmd    = kingpin.Command("show", "print a readable report of a change")
	showChange = showCmd.Arg("change", "change number or ID").Required().String()
)

func main() {
	command := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx, command)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, command string) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	logze.Init(logze.C().WithConsole().WithLevel(logze.LevelInfo))

	gerrev, err := app.New(cfg)
	if err != nil {
		return erro.Wrap(err, "new service")
	}
	ctx.Add(func(context.Context) error { return gerrev.Close() })

	switch command {
	case reviewCmd.FullCommand():
		return gerrev.RunReview(ctx, *reviewChange, reviewer.Options{
			Post:        *reviewPost,
			AutoConfirm: *reviewYes,
			Debug:       *debug,
			PromptPath:  *reviewPrompt,
		})
	case commentsCmd.FullCommand():
		return gerrev.ShowComments(ctx, *commentsChange)
	case showCmd.FullCommand():
		return gerrev.ShowChange(ctx, *showChange)
	}

	return erro.New("unknown command: %s", command)
}
