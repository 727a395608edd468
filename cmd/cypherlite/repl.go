package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/rlch/cypherlite"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func replCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Query a JSON file interactively",
		Flags:  dataFlags(),
		Action: runRepl,
	}
}

func runRepl(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	engine, err := loadEngine(cmd, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newReplModel(engine))
	_, err = p.Run()
	return err
}

type replModel struct {
	engine  *cypherlite.Engine
	input   textinput.Model
	history []string
}

func newReplModel(engine *cypherlite.Engine) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("cypher> ")
	ti.Placeholder = "MATCH (n) RETURN n.name"
	ti.Focus()

	g := engine.Graph()
	banner := fmt.Sprintf("Loaded graph with %d nodes and %d edges. Type a query, or exit to quit.",
		g.NodeCount(), g.EdgeCount())

	return replModel{
		engine:  engine,
		input:   ti,
		history: []string{banner},
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			switch query {
			case "":
				return m, nil
			case "exit", "quit":
				return m, tea.Quit
			}
			m.history = append(m.history, m.run(query))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) run(query string) string {
	res, err := m.engine.Execute(query)
	if err != nil {
		return promptStyle.Render("cypher> ") + query + "\n" + errorStyle.Render(err.Error())
	}
	return promptStyle.Render("cypher> ") + query + "\n" + renderResult(res)
}

func (m replModel) View() string {
	var b strings.Builder
	for _, entry := range m.history {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
