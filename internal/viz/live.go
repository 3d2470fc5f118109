package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mapsim/internal/dmap"
)

const (
	canvasWidth     = 60
	canvasHeight    = 20
	trailCapacity   = 400
	historyCapacity = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the evolving system and visualization buffers.
type Model struct {
	sys     dmap.Dynamics
	initial dmap.Dynamics
	name    string
	step    int
	running bool

	trail   []dmap.State
	history []float64

	minX, maxX, minY, maxY float64
}

func NewModel(sys dmap.Dynamics, name string) Model {
	return Model{
		sys:     sys,
		initial: sys,
		name:    name,
		running: true,
		trail:   make([]dmap.State, 0, trailCapacity),
		history: make([]float64, 0, historyCapacity),
		minX:    -1, maxX: 1, minY: -1, maxY: 1,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sys = m.initial
			m.step = 0
			m.trail = m.trail[:0]
			m.history = m.history[:0]
		}
	case TickMsg:
		if m.running {
			m.observe()
			m.sys = m.sys.Advance(1)
			m.step++
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) observe() {
	orbit, err := m.sys.Orbit(1)
	if err != nil || len(orbit) == 0 {
		return
	}
	x := orbit[0]

	m.trail = append(m.trail, x)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}

	m.history = append(m.history, x[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	px, py := project(x, m.step)
	if px < m.minX {
		m.minX = px
	}
	if px > m.maxX {
		m.maxX = px
	}
	if py < m.minY {
		m.minY = py
	}
	if py > m.maxY {
		m.maxY = py
	}
}

// project picks plot coordinates: the first two components for
// multi-dimensional systems, step-vs-value for 1-D.
func project(x dmap.State, step int) (float64, float64) {
	if len(x) >= 2 {
		return x[0], x[1]
	}
	return float64(step), x[0]
}

func (m Model) View() string {
	canvas := make([][]rune, canvasHeight)
	for i := range canvas {
		canvas[i] = make([]rune, canvasWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	spanX := m.maxX - m.minX
	spanY := m.maxY - m.minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	for i, x := range m.trail {
		px, py := project(x, m.step-len(m.trail)+i)
		col := int((px - m.minX) / spanX * float64(canvasWidth-1))
		row := canvasHeight - 1 - int((py-m.minY)/spanY*float64(canvasHeight-1))
		if col >= 0 && col < canvasWidth && row >= 0 && row < canvasHeight {
			if i == len(m.trail)-1 {
				canvas[row][col] = 'O'
			} else if canvas[row][col] == ' ' {
				canvas[row][col] = '.'
			}
		}
	}

	var rows []string
	for _, row := range canvas {
		rows = append(rows, string(row))
	}

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("model") + valueStyle.Render(m.name) + "\n")
	stats.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d", m.step)) + "\n")
	stats.WriteString(labelStyle.Render("dim") + valueStyle.Render(fmt.Sprintf("%d", m.sys.Dimension())) + "\n")
	if len(m.trail) > 0 {
		last := m.trail[len(m.trail)-1]
		for i, v := range last {
			if i >= 4 {
				break
			}
			stats.WriteString(labelStyle.Render(fmt.Sprintf("x%d", i)) + valueStyle.Render(fmt.Sprintf("%.5f", v)) + "\n")
		}
	}

	graph := ""
	if len(m.history) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(canvasWidth)))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(strings.Join(rows, "\n")),
		lipgloss.NewStyle().Padding(0, 2).Render(stats.String()),
	)

	return headerStyle.Render("mapsim live: "+m.name) + "\n" +
		body + "\n" + graph + "\n" +
		helpStyle.Render("space pause - r reset - q quit")
}
