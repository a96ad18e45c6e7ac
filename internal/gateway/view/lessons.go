package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

// LessonBrowser is an interactive list of lessons with a detail pane.
type LessonBrowser struct {
	lessons  []client.Lesson
	cursor   int
	open     bool
	width    int
	quitting bool
}

// NewLessonBrowser creates a browser over lessons in their given order.
func NewLessonBrowser(lessons []client.Lesson) LessonBrowser {
	return LessonBrowser{lessons: lessons}
}

// Init implements tea.Model.
func (m LessonBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m LessonBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			if !m.open && m.cursor < len(m.lessons)-1 {
				m.cursor++
			}

		case "k", "up":
			if !m.open && m.cursor > 0 {
				m.cursor--
			}

		case "enter":
			if len(m.lessons) > 0 {
				m.open = true
			}

		case "esc", "backspace":
			m.open = false
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// Selected returns the lesson under the cursor, if any.
func (m LessonBrowser) Selected() (client.Lesson, bool) {
	if len(m.lessons) == 0 {
		return client.Lesson{}, false
	}
	return m.lessons[m.cursor], true
}

// Open reports whether the detail pane is showing.
func (m LessonBrowser) Open() bool {
	return m.open
}

// View implements tea.Model.
func (m LessonBrowser) View() string {
	if m.quitting {
		return ""
	}

	if len(m.lessons) == 0 {
		return TitleStyle.Render("Educación financiera") + "\n" +
			SubtitleStyle.Render("No hay lecciones disponibles") + "\n"
	}

	if m.open {
		return m.detailView()
	}

	lines := make([]string, 0, len(m.lessons)+3)
	lines = append(lines, TitleStyle.Render("Educación financiera"))
	for i, l := range m.lessons {
		prefix := "  "
		line := lessonTitle(l)
		if i == m.cursor {
			prefix = lipgloss.NewStyle().Foreground(AccentColor).Render("> ")
			line = BoldStyle.Render(line)
		}
		lines = append(lines, prefix+line)
	}
	lines = append(lines, "", SubtitleStyle.Render("[↑↓] Navegar | [Enter] Abrir | [q] Salir"))

	return strings.Join(lines, "\n") + "\n"
}

func (m LessonBrowser) detailView() string {
	l := m.lessons[m.cursor]

	content := l.Content
	if m.width > 4 {
		content = lipgloss.NewStyle().Width(m.width - 4).Render(content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(l.Title),
		SubtitleStyle.Render(fmt.Sprintf("Nivel %s · %d min", l.Level, l.DurationMinutes)),
		BoxStyle.Render(content),
		"",
		SubtitleStyle.Render("[Esc] Volver | [q] Salir"),
	) + "\n"
}
