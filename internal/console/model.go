// Package console is a small interactive front end over the same task
// database the bot serves. It accepts the exact command language the chat
// transport does, so whatever the bot understands works here too.
package console

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todobot/internal/model"
	"github.com/sandeepkv93/todobot/internal/nlu"
	"github.com/sandeepkv93/todobot/internal/reply"
	"github.com/sandeepkv93/todobot/internal/tasks"
)

const opTimeout = 5 * time.Second

type keyMap struct {
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var defaultKeys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
	Help:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle help")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
}

type tasksLoadedMsg struct {
	items []model.Task
	err   error
}

type commandDoneMsg struct {
	reply string
	err   error
}

type Model struct {
	svc         *tasks.Service
	owner       string
	input       textinput.Model
	items       []model.Task
	status      string
	helpVisible bool
	keys        keyMap
}

func NewModel(svc *tasks.Service, owner string) Model {
	input := textinput.New()
	input.Placeholder = `try "add buy milk to today"`
	input.Focus()
	return Model{
		svc:   svc,
		owner: owner,
		input: input,
		keys:  defaultKeys,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadTasks())
}

func (m Model) loadTasks() tea.Cmd {
	svc, owner := m.svc, m.owner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		items, err := svc.List(ctx, owner, model.ScopeNone)
		return tasksLoadedMsg{items: items, err: err}
	}
}

func (m Model) runCommand(text string) tea.Cmd {
	svc, owner := m.svc, m.owner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		out, err := svc.Dispatch(ctx, owner, nlu.Parse(text))
		if err != nil {
			return commandDoneMsg{err: err}
		}
		return commandDoneMsg{reply: reply.Format(out)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			return m, m.runCommand(text)
		}
	case tasksLoadedMsg:
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		return m, nil
	case commandDoneMsg:
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.reply
		return m, m.loadTasks()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
