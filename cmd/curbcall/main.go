package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"curbcall/internal/appctx"
	"curbcall/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	ctx := context.Background()

	app, err := appctx.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curbcall: %v\n", err)
		os.Exit(1)
	}

	notifier := ui.NewNotifier()
	model := ui.NewAppModel(app, notifier)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	notifier.Attach(p.Send)

	_, runErr := p.Run()

	model.Close()
	shutdownCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := app.Close(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "curbcall: shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "curbcall: %v\n", runErr)
		os.Exit(1)
	}
}
