package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/storage"
	"github.com/i2bric/TaskHero/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *engine.ProfileView
	tasks   []storage.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *engine.ProfileView
	tasks   []storage.Task
	err     error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

type deletedMsg struct {
	id  int64
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.Tasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.DeleteTask(m.ctx, id)
		return deletedMsg{id: id, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		line := fmt.Sprintf("Completed %d: +%d XP", msg.res.TaskID, msg.res.ExpEarned)
		if msg.res.LeveledUp {
			line += fmt.Sprintf(" %s (level %d → %d)", ui.BadgeLevelUp, msg.res.LevelBefore, msg.res.NewLevel)
		}
		m.lastLog = line
		return m, m.loadCmd()
	case deletedMsg:
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Deleted %d (no reward).", msg.id)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, keys.Complete):
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Completing %d…", t.ID)
			return m, m.completeCmd(t.ID)
		case key.Matches(msg, keys.Delete):
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Deleting %d…", t.ID)
			return m, m.deleteCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconHero, "TaskHero") + "\n")
	if m.profile != nil {
		p := m.profile
		title := ui.TitleStyle(p.Title.Color).Render(p.Title.Icon + " " + p.Title.Name)
		b.WriteString(fmt.Sprintf("%s  %s\n", ui.LabelValue("Level", p.Level), title))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			ui.Key.Render("XP:"),
			ui.XPBar(p.Experience, p.ExperienceToNext, 24),
			ui.Muted.Render(fmt.Sprintf("%d/%d", p.Experience, p.ExperienceToNext)),
		))
		b.WriteString(fmt.Sprintf("%s %s\n",
			ui.Key.Render("Streak:"),
			fmt.Sprintf("%s %d %s", ui.IconFire, p.CurrentStreak, ui.Muted.Render(fmt.Sprintf("(best %d)", p.LongestStreak))),
		))
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
	}
	if len(m.tasks) == 0 && !m.loading {
		b.WriteString(ui.Muted.Render("No active tasks. Add one with `th add`.") + "\n")
	}

	now := time.Now()
	for i, t := range m.tasks {
		due := t.Deadline.Local().Format("Jan 2 15:04")
		if now.After(t.Deadline) {
			due = ui.Bad.Render(due + " overdue")
		} else {
			due = ui.Muted.Render(due)
		}
		line := fmt.Sprintf("#%d %s  %s  %s", t.ID, t.Text, ui.DifficultyText(t.Difficulty), due)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render("c/space complete · d delete · r refresh · q quit") + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog) + "\n")
	return b.String()
}
