// Package tui provides a read-only Bubble Tea browser for the journal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/ilm/pkg/app"
)

const (
	tabDays = iota
	tabStats
	tabWeekly
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3C9A5F"))
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	subjectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3B3")).Bold(true)
	bookStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	sessionStyle  = lipgloss.NewStyle().Italic(true)
	fieldKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	summaryStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#3C9A5F"))
)

// Model is the journal browser. It never mutates the service; every view
// is rendered from the in-memory log and caches.
type Model struct {
	svc *app.Service

	tabs      []string
	activeTab int

	dates   []string
	dateIdx int

	viewports []viewport.Model

	width  int
	height int
}

// New builds the browser over a loaded service. The newest day starts
// selected.
func New(svc *app.Service) *Model {
	m := &Model{
		svc:  svc,
		tabs: []string{"Days", "Statistics", "Weekly"},
	}
	m.dates = svc.Log.Dates()
	m.dateIdx = len(m.dates) - 1
	if m.dateIdx < 0 {
		m.dateIdx = 0
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "j", "down":
			if m.activeTab == tabDays {
				m.moveDate(1)
				return m, nil
			}
		case "k", "up":
			if m.activeTab == tabDays {
				m.moveDate(-1)
				return m, nil
			}
		case "g", "home":
			m.viewports[m.activeTab].GotoTop()
			return m, nil
		case "G", "end":
			m.viewports[m.activeTab].GotoBottom()
			return m, nil
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.viewports[m.activeTab].View(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeTabStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) moveDate(delta int) {
	if len(m.dates) == 0 {
		return
	}
	next := m.dateIdx + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.dates) {
		next = len(m.dates) - 1
	}
	if next == m.dateIdx {
		return
	}
	m.dateIdx = next
	m.viewports[tabDays].SetContent(m.renderDays())
}

func (m *Model) renderTabContents() {
	m.viewports[tabDays].SetContent(m.renderDays())
	m.viewports[tabStats].SetContent(m.renderStats())
	m.viewports[tabWeekly].SetContent(m.renderWeekly())
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	help := "Nav: left/right  Scroll: up/down  Quit: q"
	if m.activeTab == tabDays {
		help = "Nav: left/right  Day: j/k  Quit: q"
	}
	return helpStyle.Render(help)
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// Run starts the browser in the alternate screen.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
