package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/export"
	"github.com/san-kum/trimosaic/internal/metrics"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	statsWidth      = 45
	historyCapacity = 600
	recordWidth     = 480
)

type TickMsg time.Time

// Options configure the terminal view.
type Options struct {
	Title    string
	TimeStep float64
	Style    export.Style
	// RecordPath is where the g key writes its GIF.
	RecordPath string
	Theme      string
}

// Model draws an animation cycle into a Braille canvas and steps it on
// every tick.
type Model struct {
	cycle    *anim.Cycle
	viewport mosaic.Size
	opts     Options

	canvas *Canvas
	proj   Projection
	theme  Theme
	styles styles

	running  bool
	showHelp bool

	meanScale    *metrics.MeanScale
	settled      *metrics.Settled
	laps         *metrics.CursorLaps
	scaleHistory []float64

	recorder  *export.Recorder
	recording bool
	status    string
}

// NewModel wraps cycle, whose shapes were generated for viewport.
func NewModel(cycle *anim.Cycle, viewport mosaic.Size, opts Options) Model {
	if opts.TimeStep <= 0 {
		opts.TimeStep = 1.0 / 60
	}
	if opts.RecordPath == "" {
		opts.RecordPath = "trimosaic.gif"
	}
	theme := GetTheme(opts.Theme)
	canvas := NewCanvas(defaultCols, defaultRows)
	return Model{
		cycle:        cycle,
		viewport:     viewport,
		opts:         opts,
		canvas:       canvas,
		proj:         NewProjection(viewport, canvas),
		theme:        theme,
		styles:       newStyles(theme),
		running:      true,
		meanScale:    metrics.NewMeanScale(),
		settled:      metrics.NewSettled(),
		laps:         metrics.NewCursorLaps(),
		scaleHistory: make([]float64, 0, historyCapacity),
	}
}

func tick(dt float64) tea.Cmd {
	return tea.Tick(time.Duration(dt*float64(time.Second)), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.opts.TimeStep)
}

// Update handles input events and steps the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case ".":
			if !m.running {
				m.step()
				m.draw()
			}
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording && m.running {
			if err := m.recorder.Capture(m.cycle.Shapes()); err != nil {
				m.status = "record: " + err.Error()
				m.recording = false
			}
		}
		return m, tick(m.opts.TimeStep)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	cols, rows := w-statsWidth-6, h-2
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}
	m.canvas = NewCanvas(cols, rows)
	m.proj = NewProjection(m.viewport, m.canvas)
	m.draw()
}

// step advances the cycle one frame and records the panel metrics.
func (m *Model) step() {
	m.cycle.Step(m.opts.TimeStep)
	f := sim.Frame{
		Index: m.cycle.Frame(),
		Time:  m.cycle.Elapsed(),
		Dt:    m.opts.TimeStep,
		Cycle: m.cycle,
	}
	m.meanScale.Observe(f)
	m.settled.Observe(f)
	m.laps.Observe(f)

	m.scaleHistory = append(m.scaleHistory, m.meanScale.Value())
	if len(m.scaleHistory) > historyCapacity {
		m.scaleHistory = m.scaleHistory[1:]
	}
}

// reset returns the cycle to its first frame.
func (m *Model) reset() {
	m.cycle.Reset()
	m.meanScale.Reset()
	m.settled.Reset()
	m.laps.Reset()
	m.scaleHistory = m.scaleHistory[:0]
	m.draw()
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recorder = export.NewRecorder(m.viewport, m.opts.Style, recordWidth, int(1/m.opts.TimeStep+0.5))
		m.recording = true
		m.status = "recording"
		return
	}
	m.recording = false
	if err := export.SaveGIF(m.opts.RecordPath, m.recorder); err != nil {
		m.status = "record: " + err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", m.recorder.Len(), m.opts.RecordPath)
	}
	m.recorder = nil
}

// draw outlines every shape that has been coloured in its stroke colour.
func (m *Model) draw() {
	m.canvas.Clear()
	for _, s := range m.cycle.Shapes() {
		if s.Stroke.A <= 0 || s.Transform.Scale.X <= 0 {
			continue
		}
		m.canvas.SetPen(hexColor(s.Stroke))
		m.canvas.DrawPolygon(m.proj.Points(s.Vertices()))
	}
	m.canvas.SetPen("")
}

func hexColor(c mosaic.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	st := m.styles
	var s strings.Builder

	title := m.opts.Title
	if title == "" {
		title = "trimosaic"
	}
	s.WriteString(st.title.Render(strings.ToUpper(title)) + "\n")

	switch {
	case m.recording:
		s.WriteString(st.record.Render("● REC") + "\n\n")
	case m.running:
		s.WriteString(st.live.Render(Spinner(m.cycle.Frame())+" RUNNING") + "\n\n")
	default:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.scaleHistory) > 1 {
		chart := asciigraph.Plot(m.scaleHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean scale"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.cycle.Elapsed()))
	row("Frame", fmt.Sprintf("%d", m.cycle.Frame()))
	row("Shapes", fmt.Sprintf("%d", m.cycle.Len()))
	if idx, ok := m.cycle.Cursor(); ok {
		row("Cursor", fmt.Sprintf("%d", idx))
	} else {
		row("Cursor", "-")
	}
	row("Laps", fmt.Sprintf("%.0f", m.laps.Value()))
	row("Scale", fmt.Sprintf("%.3f", m.meanScale.Value()))
	row("Settled", ProgressBar(m.settled.Value(), 10))
	if shapes := m.cycle.Shapes(); len(shapes) > 0 && shapes[0].Stroke.A > 0 {
		row("Hue", fmt.Sprintf("%.1f°", anim.Hue(shapes[0].Stroke)))
	}
	row("Theme", m.theme.Name)
	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}

	s.WriteString(st.help.Render("─────────────────────\nSP:Pause .:Step R:Reset\nT:Theme G:Record ?:Help Q:Quit"))

	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(m.canvas.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  .        - Step one frame (paused)  ║
║  R        - Restart from frame zero  ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the terminal view in the alternate screen and blocks until
// the user quits.
func Run(cycle *anim.Cycle, viewport mosaic.Size, opts Options) error {
	_, err := tea.NewProgram(NewModel(cycle, viewport, opts), tea.WithAltScreen()).Run()
	return err
}
