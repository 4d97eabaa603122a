package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todobot/internal/console"
	"github.com/sandeepkv93/todobot/internal/storage"
	"github.com/sandeepkv93/todobot/internal/tasks"
)

func main() {
	var (
		dbPath = flag.String("db", "todobot.db", "path to the sqlite task database")
		owner  = flag.String("owner", "", "owner whose tasks to manage")
	)
	flag.Parse()

	if *owner == "" {
		fmt.Fprintln(os.Stderr, "todoctl: -owner is required")
		os.Exit(2)
	}

	repo, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "todoctl failed: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	program := tea.NewProgram(console.NewModel(tasks.NewService(repo), *owner))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "todoctl failed: %v\n", err)
		os.Exit(1)
	}
}
