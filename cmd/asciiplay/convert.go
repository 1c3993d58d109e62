package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/asciiplay/pipeline"
)

const progressWidth = 30

var errAborted = errors.New("aborted before playback")

// convert renders every frame to text. On a terminal it shows progress and,
// when waiting is enabled, holds until enter is pressed.
func (a *app) convert(p *pipeline.Pipeline, frames []*image.RGBA) ([]string, error) {
	if !a.interactive {
		start := time.Now()
		texts := p.TextAll(frames)

		a.logger.Info("converted frames",
			slog.Int("frames", len(texts)),
			slog.Duration("elapsed", time.Since(start)),
		)

		return texts, nil
	}

	m := newConvertModel(frames, p.Text, a.wait)

	final, err := tea.NewProgram(m, tea.WithInput(a.stdin), tea.WithOutput(a.stdout)).Run()
	if err != nil {
		return nil, fmt.Errorf("conversion view: %w", err)
	}

	res, ok := final.(*convertModel)
	if !ok || res.aborted {
		return nil, errAborted
	}

	return res.texts, nil
}

// convertedMsg carries the text of the next converted frame.
type convertedMsg struct {
	text string
}

// convertModel converts frames one command at a time and reports progress.
type convertModel struct {
	render  func(*image.RGBA) string
	frames  []*image.RGBA
	texts   []string
	start   time.Time
	elapsed time.Duration
	wait    bool
	done    bool
	aborted bool
}

func newConvertModel(frames []*image.RGBA, render func(*image.RGBA) string, wait bool) *convertModel {
	return &convertModel{
		render: render,
		frames: frames,
		texts:  make([]string, 0, len(frames)),
		wait:   wait,
	}
}

// Init starts converting the first frame.
func (m *convertModel) Init() tea.Cmd {
	m.start = time.Now()

	return m.next()
}

// next returns the command converting the next frame, or finishes.
func (m *convertModel) next() tea.Cmd {
	i := len(m.texts)
	if i >= len(m.frames) {
		m.done = true
		m.elapsed = time.Since(m.start)

		if m.wait {
			return nil
		}

		return tea.Quit
	}

	frame := m.frames[i]
	render := m.render

	return func() tea.Msg {
		return convertedMsg{text: render(frame)}
	}
}

// Update handles converted frames and key presses.
func (m *convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case convertedMsg:
		m.texts = append(m.texts, msg.text)

		return m, m.next()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true

			return m, tea.Quit

		case "enter":
			if m.done {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View renders the progress bar and, once done, the start prompt.
func (m *convertModel) View() tea.View {
	var sb strings.Builder

	n, total := len(m.texts), len(m.frames)

	filled := progressWidth
	if total > 0 {
		filled = n * progressWidth / total
	}

	fmt.Fprintf(&sb, "Converting frames to text: [%s%s] %d/%d\n",
		strings.Repeat("#", filled), strings.Repeat("-", progressWidth-filled), n, total)

	if m.done {
		fmt.Fprintf(&sb, "Converted %d frames in %dms\n", total, m.elapsed.Milliseconds())

		if m.wait && !m.aborted {
			sb.WriteString("Press enter to start animation")
		}
	}

	return tea.NewView(sb.String())
}
