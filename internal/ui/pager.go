package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"searchbar/internal/domain"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in ov while the Bubble Tea program is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content using ov
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k style movement on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+n", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+p", "k"}
	config.Keybind["top"] = []string{"Home", "g"}
	config.Keybind["bottom"] = []string{"End", "G"}
	config.Keybind["exit"] = []string{"Escape", "q"}
}

// RenderResultDetail renders the pager page for a single result
func RenderResultDetail(rec domain.ResultRecord) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(rec.Title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), value))
	}

	field("Type", string(rec.Type))
	field("Tab", domain.CategoryOf(rec.Type).Info().Label)
	field("Details", rec.Subtitle)
	if rec.Type == domain.TypePerson {
		field("Status", string(rec.Presence()))
	}

	return b.String()
}
