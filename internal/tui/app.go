// Package tui is the interactive terminal frontend: a 60 fps Bubble
// Tea loop over the scene engine, with editable scenario parameters
// and live body selection.
package tui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/scene"
	"github.com/kiimicoum5/Astrale/internal/viz"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	headerStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model holds the engine, the solar view and the UI cursors.
type Model struct {
	engine        *scene.Engine
	view          *viz.SolarView
	frame         scene.FrameState
	ind           impact.Indicators
	cursor        int
	target        int
	names         []string
	paused        bool
	showHelp      bool
	recording     bool
	frames        []*image.Paletted
	history       []float64
	ticks         int
	tickEvery     time.Duration
	dt            float64
	width, height int
}

// NewModel builds the initial UI state around a prepared engine. fps
// sets the frame cadence and timeScale stretches scene seconds
// against wall seconds; non-positive values fall back to 60 and 1.
func NewModel(engine *scene.Engine, traceSegments, fps int, timeScale float64) Model {
	if fps <= 0 {
		fps = 60
	}
	if timeScale <= 0 {
		timeScale = 1
	}
	m := Model{
		engine:    engine,
		view:      viz.NewSolarView(engine.Catalog(), canvasWidth, canvasHeight, traceSegments),
		names:     engine.Catalog().Names(),
		history:   make([]float64, 0, historyCapacity),
		tickEvery: time.Second / time.Duration(fps),
		dt:        timeScale / float64(fps),
	}
	m.ind = impact.Compute(engine.Params())
	m.pushHistory()
	m.frame = engine.Tick(0)
	return m
}

func (m *Model) pushHistory() {
	m.history = append(m.history, m.ind.EnergyMegaton)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the scene. Pausing skips
// the engine tick entirely, so elapsed scene time freezes with it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.paused {
			m.frame = m.engine.Tick(m.dt)
		}
		m.ticks++
		if m.recording {
			m.view.Render(m.frame)
			m.frames = append(m.frames, viz.CaptureFrame(m.view.Canvas))
		}
		return m, tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.engine.Reset()
		m.ind = impact.Compute(m.engine.Params())
		m.history = m.history[:0]
		m.pushHistory()
		m.frame = m.engine.Tick(0)
	case "tab":
		m.cursor = (m.cursor + 1) % len(impact.Fields)
	case "shift+tab":
		m.cursor = (m.cursor + len(impact.Fields) - 1) % len(impact.Fields)
	case "up", "k":
		m.adjustParam(1)
	case "down", "j":
		m.adjustParam(-1)
	case "left", "h":
		if len(m.names) > 0 {
			m.target = (m.target + len(m.names) - 1) % len(m.names)
		}
	case "right", "l":
		if len(m.names) > 0 {
			m.target = (m.target + 1) % len(m.names)
		}
	case "enter":
		if len(m.names) > 0 {
			_ = m.engine.Select(m.names[m.target])
		}
	case "esc":
		m.engine.Deselect()
	case "f":
		_ = m.engine.RefreshLive()
	case "t":
		names := viz.ThemeNames()
		for i, name := range names {
			if name == viz.CurrentTheme.Name {
				viz.SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "g":
		if m.recording {
			_ = viz.SaveGIF("astrale.gif", m.frames)
			m.recording = false
			m.frames = nil
		} else {
			m.recording = true
			m.frames = make([]*image.Paletted, 0)
		}
	case "x":
		m.view.Camera.RotateX(0.1)
	case "X":
		m.view.Camera.RotateX(-0.1)
	case "y":
		m.view.Camera.RotateY(0.1)
	case "Y":
		m.view.Camera.RotateY(-0.1)
	case "z":
		m.view.Camera.RotateZ(0.1)
	case "Z":
		m.view.Camera.RotateZ(-0.1)
	case "+", "=":
		m.view.Camera.ZoomIn()
	case "-", "_":
		m.view.Camera.ZoomOut()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// adjustParam steps the cursor's field by its declared step, clamped
// to its bounds before it reaches the engine.
func (m *Model) adjustParam(dir float64) {
	field := impact.Fields[m.cursor]
	b := impact.Bounds[field]

	p := m.engine.Params()
	if err := p.Set(field, p.Get(field)+dir*b.Step); err != nil {
		return
	}
	p = p.Clamped()

	m.engine.SetParams(p)
	m.ind = impact.Compute(p)
	m.pushHistory()
}

// View renders the canvas panel next to the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.view.Render(m.frame))

	var s strings.Builder
	theme := viz.CurrentTheme
	s.WriteString(headerStyle.Render(viz.GradientText("ASTRALE", theme.Primary, theme.Secondary)) + "\n")

	status := viz.StatusRunning.Render("RUNNING")
	if m.paused {
		status = viz.StatusPaused.Render("PAUSED")
	}
	if m.recording {
		status += " " + viz.StatusRecording.Render("REC")
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Yield (Mt)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.1fs", m.frame.Elapsed)) + "\n")

	focused := m.frame.Focused
	if focused == "" {
		focused = "(none)"
	}
	s.WriteString(labelStyle.Render("Focus") + valueStyle.Render(focused) + "\n")
	if len(m.names) > 0 {
		s.WriteString(labelStyle.Render("Target") + valueStyle.Render("◂ "+m.names[m.target]+" ▸") + "\n")
	}
	if bf, ok := m.frame.Body(m.frame.Focused); ok {
		s.WriteString(labelStyle.Render("Spin") + valueStyle.Render(fmt.Sprintf("%.2f rad", bf.Spin)) + "\n")
	}
	if m.frame.Advisory != "" {
		adv := lipgloss.NewStyle().Foreground(theme.Warning).Render(m.frame.Advisory)
		s.WriteString(viz.AnimatedSpinner(m.ticks) + " " + adv + "\n")
	}

	s.WriteString("\nIMPACT\n")
	rows := []struct{ label, val string }{
		{"Energy", fmt.Sprintf("%.3e J", m.ind.Energy)},
		{"Yield", fmt.Sprintf("%.1f Mt", m.ind.EnergyMegaton)},
		{"Richter", fmt.Sprintf("%.2f", m.ind.Richter)},
		{"Crater", fmt.Sprintf("%.1f km", m.ind.CraterDiameterKm)},
		{"Tsunami", fmt.Sprintf("%.1f m", m.ind.TsunamiHeight)},
		{"Warning", fmt.Sprintf("%.1f h", m.ind.WarningHours)},
		{"Deflect", fmt.Sprintf("%.1f m/s", m.ind.DeflectionDelta)},
	}
	for _, row := range rows {
		s.WriteString(viz.MetricLabel.Render(fmt.Sprintf("%-10s", row.label)) + viz.MetricValue.Render(row.val) + "\n")
	}

	s.WriteString("\nSCENARIO\n")
	p := m.engine.Params()
	for i, field := range impact.Fields {
		b := impact.Bounds[field]
		v := p.Get(field)
		ratio := (v - b.Min) / (b.Max - b.Min)
		line := fmt.Sprintf("%-9s %s %6.2f %s", b.Label, viz.ProgressBar(ratio, 10), v, b.Unit)
		if i == m.cursor {
			s.WriteString(activeParamStyle.Render("> ") + line + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString("\n\n" + viz.Separator(24) + "\n")
	s.WriteString(viz.KeyHint.Render("SP:Pause R:Reset Q:Quit\nTab:Param ↑↓:Tune ◂▸:Target ⏎:Select Esc:Clear\nT:Theme G:Record F:Live X/Y/Z:Orbit Cam ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume scene       ║
║  R        - Reset scenario           ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  Left/H   - Previous body            ║
║  Right/L  - Next body                ║
║  Enter    - Select targeted body     ║
║  Esc      - Deselect                 ║
║  F        - Poll live feed           ║
║  X/Y/Z    - Rotate camera            ║
║  +/-      - Zoom                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the interactive program.
func Run(engine *scene.Engine, traceSegments, fps int, timeScale float64) error {
	p := tea.NewProgram(NewModel(engine, traceSegments, fps, timeScale), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
