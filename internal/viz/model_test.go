package viz

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/export"
	"github.com/san-kum/trimosaic/internal/mosaic"
)

func testModel(t *testing.T) Model {
	t.Helper()
	all, err := mosaic.NewBuilder().WithSize(100, 100).WithRadius(10).Build()
	if err != nil {
		t.Fatal(err)
	}
	size := mosaic.Size{Width: 100, Height: 100}
	cycle := anim.NewCycle(anim.Materialize(mosaic.Visible(all, size), 3))
	return NewModel(cycle, size, Options{
		Title:      "test",
		TimeStep:   0.25,
		Style:      export.DefaultStyle(),
		RecordPath: filepath.Join(t.TempDir(), "out.gif"),
	})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tickN(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = update(m, TickMsg(time.Now()))
	}
	return m
}

func TestModelTickSteps(t *testing.T) {
	m := testModel(t)

	m = tickN(m, 1)
	if _, ok := m.cycle.Cursor(); !ok {
		t.Fatal("first tick should place the cursor")
	}
	if m.meanScale.Value() != 0 {
		t.Error("first tick must not scale")
	}

	m = tickN(m, 2)
	if got := m.meanScale.Value(); got != 0.5 {
		t.Errorf("mean scale = %v, want 0.5", got)
	}
	if len(m.scaleHistory) != 3 {
		t.Errorf("history length = %d, want 3", len(m.scaleHistory))
	}
}

func TestModelDrawsColouredShapes(t *testing.T) {
	m := testModel(t)
	m = tickN(m, 5)

	lit := false
	for r := range m.canvas.Grid {
		for c := range m.canvas.Grid[r] {
			if m.canvas.Grid[r][c] != brailleBase {
				lit = true
				if m.canvas.Colors[r][c] == "" {
					t.Fatalf("cell %d,%d drawn without colour", r, c)
				}
			}
		}
	}
	if !lit {
		t.Error("nothing was drawn after five ticks")
	}
}

func TestModelPause(t *testing.T) {
	m := testModel(t)
	m = tickN(m, 2)
	m = update(m, key(" "))
	if m.running {
		t.Fatal("space should pause")
	}

	frame := m.cycle.Frame()
	m = tickN(m, 3)
	if m.cycle.Frame() != frame {
		t.Error("paused model kept stepping")
	}

	m = update(m, key("."))
	if m.cycle.Frame() != frame+1 {
		t.Error("step key should advance exactly one frame")
	}

	m = update(m, key(" "))
	if !m.running {
		t.Error("space should resume")
	}
}

func TestModelReset(t *testing.T) {
	m := testModel(t)
	m = tickN(m, 4)
	m = update(m, key("r"))

	if _, ok := m.cycle.Cursor(); ok {
		t.Error("reset should clear the cursor")
	}
	if m.cycle.Frame() != 0 || len(m.scaleHistory) != 0 || m.meanScale.Value() != 0 {
		t.Error("reset left animation state behind")
	}
}

func TestModelThemeAndHelp(t *testing.T) {
	m := testModel(t)
	first := m.theme.Name
	m = update(m, key("t"))
	if m.theme.Name == first {
		t.Error("t should switch theme")
	}

	m = update(m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestModelResize(t *testing.T) {
	m := testModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.canvas.Width != 120-statsWidth-6 || m.canvas.Height != 38 {
		t.Errorf("canvas = %dx%d", m.canvas.Width, m.canvas.Height)
	}

	m = update(m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if m.canvas.Width != 20 || m.canvas.Height != 10 {
		t.Errorf("small window canvas = %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModelRecording(t *testing.T) {
	m := testModel(t)
	m = update(m, key("g"))
	if !m.recording {
		t.Fatal("g should start recording")
	}
	m = tickN(m, 3)
	if m.recorder.Len() != 3 {
		t.Errorf("recorded %d frames, want 3", m.recorder.Len())
	}
	m = update(m, key("g"))
	if m.recording || !strings.HasPrefix(m.status, "saved 3 frames") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelView(t *testing.T) {
	m := testModel(t)
	m = tickN(m, 3)
	v := m.View()
	for _, want := range []string{"TEST", "RUNNING", "Shapes", "Cursor"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPicker(t *testing.T) {
	built := ""
	p := NewPicker([]string{"a", "b"}, func(s string) string { return "about " + s },
		func(name string) (Model, error) {
			built = name
			return testModel(t), nil
		})

	next, _ := p.Update(key("j"))
	p = next.(Picker)
	if p.Selected() != "b" {
		t.Fatalf("selected %q, want b", p.Selected())
	}
	if !strings.Contains(p.View(), "about b") {
		t.Error("menu should show descriptions")
	}

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(Picker)
	if built != "b" || !p.started || cmd == nil {
		t.Errorf("enter should build and start preset b (built %q)", built)
	}
}

func TestPickerBuildError(t *testing.T) {
	p := NewPicker([]string{"bad"}, nil, func(string) (Model, error) {
		return Model{}, errors.New("boom")
	})
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(Picker)
	if p.started {
		t.Error("picker started despite build error")
	}
	if !strings.Contains(p.View(), "boom") {
		t.Error("build error not shown")
	}
}
