/*
 * TUI - interactive menus rendered with bubbletea.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultMenuWidth  = 60
	defaultMenuHeight = 16
)

// choiceItem is a menu entry.
type choiceItem string

func (c choiceItem) Title() string       { return string(c) }
func (c choiceItem) Description() string { return "" }
func (c choiceItem) FilterValue() string { return string(c) }

// chooseModel is the bubbletea model of a single-choice menu.
type chooseModel struct {
	theme     Theme
	menu      list.Model
	choice    string
	cancelled bool
}

// newChooseModel builds a menu with the given title and entries.
func newChooseModel(theme Theme, message string, choices []string) chooseModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem(c)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultMenuWidth, defaultMenuHeight)
	l.Title = message
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return chooseModel{theme: theme, menu: l}
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, min(msg.Height-4, defaultMenuHeight))
		return m, nil

	case tea.KeyMsg:
		if m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			it, ok := m.menu.SelectedItem().(choiceItem)
			if !ok {
				return m, nil
			}
			m.choice = string(it)
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m chooseModel) View() string {
	if m.choice != "" || m.cancelled {
		return ""
	}
	help := m.theme.Help.Render("↑/↓ navigate • enter select • / search • esc cancel")
	return m.theme.Card.Render(m.menu.View()) + "\n" + help + "\n"
}

// confirmModel is the bubbletea model of a yes/no question.
type confirmModel struct {
	theme     Theme
	message   string
	yes       bool
	answered  bool
	cancelled bool
}

// newConfirmModel builds a yes/no question with "No" preselected.
func newConfirmModel(theme Theme, message string) confirmModel {
	return confirmModel{theme: theme, message: message}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "y", "Y":
		m.yes, m.answered = true, true
		return m, tea.Quit
	case "n", "N":
		m.yes, m.answered = false, true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		m.yes = !m.yes
	case "enter":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}
	yes, no := "  Yes  ", "  No  "
	if m.yes {
		yes = m.theme.Selected.Render("[ Yes ]")
	} else {
		no = m.theme.Selected.Render("[ No ]")
	}
	help := m.theme.Help.Render("←/→ toggle • enter confirm • y/n answer • esc cancel")
	return m.theme.Title.Render(m.message) + "\n\n" + yes + "  " + no + "\n\n" + help + "\n"
}

// TUI asks questions through full-screen terminal menus.
type TUI struct {
	in    io.Reader
	out   io.Writer
	theme Theme
}

// NewTUI creates a new TUI prompter reading keys from in and drawing on out.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out, theme: DefaultTheme()}
}

// run executes a bubbletea program and returns its final model.
func (t TUI) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("cannot run prompt: %w", err)
	}
	return final, nil
}

// Choose shows a menu and returns the selected entry.
func (t TUI) Choose(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errNoChoices
	}
	final, err := t.run(newChooseModel(t.theme, message, choices))
	if err != nil {
		return "", err
	}
	m, ok := final.(chooseModel)
	if !ok || m.cancelled || m.choice == "" {
		return "", ErrCancelled
	}
	fmt.Fprintf(t.out, "%s: %s\n", message, m.choice)
	return m.choice, nil
}

// Confirm asks a yes/no question.
func (t TUI) Confirm(message string) (bool, error) {
	final, err := t.run(newConfirmModel(t.theme, message))
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok || m.cancelled {
		return false, ErrCancelled
	}
	answer := "No"
	if m.yes {
		answer = "Yes"
	}
	fmt.Fprintf(t.out, "%s %s\n", message, answer)
	return m.yes, nil
}
