package main

import (
	"flag"
	"fmt"
	"os"

	"recipe-book/cmd/recipe-console/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "recipe-book API base URL")
	header := flag.String("session-header", "sessionid", "header carrying the session token")
	flag.Parse()

	client := ui.NewClient(*server)
	client.Header = *header

	p := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
