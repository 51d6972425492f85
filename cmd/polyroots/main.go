// Command polyroots rebuilds the monic polynomial whose roots are given as
// digit strings in arbitrary bases and checks that every used root
// evaluates to zero.
package main

import (
	"context"
	"os"

	"github.com/agbru/polyroots/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCodeForParseError(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
