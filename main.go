package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgirard/etch/internal/config"
	"github.com/mgirard/etch/internal/editor"
	"github.com/mgirard/etch/internal/errmsg"
	"github.com/mgirard/etch/internal/state"
)

func initialModel() (*editor.Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Open state manager
	stateMgr, err := state.Open()
	if err != nil {
		return nil, err
	}

	// Determine start folder: saved session > config default > cwd
	folder := cfg.DefaultFolder
	recursive := cfg.SubfoldersDefault()

	if session, err := stateMgr.GetSession(); err == nil && session != nil {
		// Check if saved folder still exists
		if _, statErr := os.Stat(session.LastFolder); statErr == nil {
			folder = session.LastFolder
			recursive = session.IncludeSubfolders
		}
	}

	if folder == "" {
		folder, err = os.Getwd()
		if err != nil {
			stateMgr.Close()
			return nil, err
		}
	}

	return editor.New(stateMgr, folder, recursive), nil
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
