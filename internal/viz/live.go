package viz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
	"github.com/san-kum/ribbons/internal/scene"
)

const (
	historyCapacity = 240
	// hitRadius is how close, in pixels, a pointer must be to a ribbon
	// point to count as touching it.
	hitRadius = 24.0
)

type TickMsg time.Time

// Model is the live view. bubbletea serializes ticks, input and resizes
// through Update, which makes it the driver's single writer.
type Model struct {
	cfg     *config.Config
	layout  *scene.Layout
	surface *Surface
	drv     *driver.Driver

	running    bool
	hovered    int
	sagHistory []float64
	status     string
	showHelp   bool
	theme      Theme
	st         styles
}

func NewModel(cfg *config.Config) Model {
	layout := scene.NewLayout(cfg)
	cols := int(cfg.Viewport.Width / (2 * cfg.DotSize))
	rows := int(cfg.Viewport.Height / (4 * cfg.DotSize))
	surface := NewSurface(cols, rows, cfg.DotSize)

	drv := driver.New(layout, layout, surface)
	drv.SetRand(rand.New(rand.NewSource(cfg.Seed)))
	drv.Reinit()

	theme := GetTheme(cfg.Theme)
	return Model{
		cfg:        cfg,
		layout:     layout,
		surface:    surface,
		drv:        drv,
		running:    true,
		hovered:    -1,
		sagHistory: make([]float64, 0, historyCapacity),
		theme:      theme,
		st:         newStyles(theme),
	}
}

// Driver exposes the underlying driver for inspection.
func (m Model) Driver() *driver.Driver { return m.drv }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "s":
		m.drv.PerturbAll()
		m.status = "shook all ribbons"
	case "r":
		m.drv.Reinit()
		m.sagHistory = m.sagHistory[:0]
		m.status = "reset"
	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.perturb(int(key[0] - '1'))
	}
	return m, nil
}

// handleMouse maps a click or a pointer entering a ribbon to a shake of
// that ribbon.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	idx := m.chainAt(m.surface.CellCenter(msg.X-1, msg.Y))
	switch msg.Action {
	case tea.MouseActionPress:
		if idx >= 0 {
			m.perturb(idx)
		}
	case tea.MouseActionMotion:
		if idx >= 0 && idx != m.hovered {
			m.perturb(idx)
		}
	}
	m.hovered = idx
}

func (m *Model) perturb(i int) {
	if err := m.drv.Perturb(i); err != nil {
		if errors.Is(err, ribbon.ErrNoChain) {
			m.status = fmt.Sprintf("no ribbon %d", i+1)
			return
		}
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("shook ribbon %d", i+1)
}

// chainAt returns the index of the ribbon with a point nearest to p
// within hitRadius, or -1.
func (m *Model) chainAt(p ribbon.Vec2) int {
	best, bestDist := -1, hitRadius
	for i, c := range m.drv.Chains() {
		for _, pt := range c.Points {
			if d := pt.Pos.Dist(p); d <= bestDist {
				best, bestDist = i, d
			}
		}
	}
	return best
}

// resize fits the canvas to the terminal and rebuilds every ribbon.
func (m *Model) resize(w, h int) {
	cols := w - statsWidth - 3
	rows := h - 1
	m.surface.Resize(cols, rows)
	m.layout.Resize(m.surface.ViewportSize())
	m.drv.Reinit()
	m.hovered = -1
}

func (m *Model) step() {
	m.layout.Advance()
	m.drv.Tick()
	if m.drv.State() != driver.Active {
		return
	}

	sag := 0.0
	for _, c := range m.drv.Chains() {
		if s := c.Sag(); s > sag {
			sag = s
		}
	}
	m.sagHistory = append(m.sagHistory, sag)
	if len(m.sagHistory) > historyCapacity {
		m.sagHistory = m.sagHistory[1:]
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.st.header.Render("RIBBONS · "+strings.ToUpper(m.cfg.Name)) + "\n")

	switch {
	case !m.running:
		s.WriteString(m.st.suspended.Render("PAUSED") + "\n")
	case m.drv.State() == driver.Suspended:
		s.WriteString(m.st.suspended.Render(fmt.Sprintf("SUSPENDED (≤ %.0fpx)", driver.Breakpoint)) + "\n")
	default:
		s.WriteString(m.st.active.Render("ACTIVE") + "\n")
	}
	s.WriteString("\n")

	if len(m.sagHistory) > 1 {
		chart := asciigraph.Plot(m.sagHistory, asciigraph.Height(5), asciigraph.Width(statsWidth-12), asciigraph.Caption("sag (px)"))
		s.WriteString(m.st.chart.Render(chart) + "\n\n")
	}

	s.WriteString(m.row("Ribbons", fmt.Sprintf("%d", len(m.drv.Chains()))))
	s.WriteString(m.row("Frame", fmt.Sprintf("%d", m.drv.Frames())))
	s.WriteString(m.row("Viewport", fmt.Sprintf("%.0f×%.0f px", m.layout.Width(), m.layout.Height())))
	if m.status != "" {
		s.WriteString(m.row("Last", m.status))
	}

	if m.showHelp {
		s.WriteString(m.st.help.Render("SP  pause/resume\n1-9 shake ribbon\nS   shake all\nR   rebuild ribbons\nT   cycle theme\nclick/hover a ribbon to shake it\nQ   quit"))
	} else {
		s.WriteString(m.st.help.Render("SP:Pause S:Shake R:Reset\nT:Theme ?:Help Q:Quit"))
	}

	canvasView := m.st.canvas.Render(m.surface.Render())
	statsView := m.st.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) row(label, value string) string {
	return m.st.label.Render(label) + m.st.value.Render(value) + "\n"
}

// Run starts the live view in the alternate screen with mouse tracking.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
