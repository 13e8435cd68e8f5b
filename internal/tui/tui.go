// Package tui provides a Bubble Tea terminal user interface for the gallery exporter.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/handiism/gallery-exporter/internal/config"
	"github.com/handiism/gallery-exporter/internal/gallery"
	"github.com/handiism/gallery-exporter/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	photoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   gallery.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Export context
	ctx    context.Context
	cancel context.CancelFunc

	gallery *gallery.Gallery
	events  chan gallery.ProgressEvent

	// Export progress
	copiedFiles int32
	totalFiles  int32
	copiedBytes int64

	// Results
	exportPath string
	photoCount int
	inventory  []model.PhotoInfo

	// Options
	verbose       bool
	showInventory bool

	width  int
	height int
}

// NewModel creates a new TUI model. A nil settings means the defaults.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "~/Pictures/cat.jpg ~/Pictures/dog.png"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:         StateInput,
		textInput:     ti,
		spinner:       sp,
		progress:      prog,
		settings:      settings,
		logs:          make([]LogEntry, 0),
		ctx:           ctx,
		cancel:        cancel,
		verbose:       settings.Verbose,
		showInventory: settings.ShowInventory,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every gallery progress event.
	ProgressMsg struct {
		Event gallery.ProgressEvent
	}

	// ExportDoneMsg is sent when the export (and inventory, if enabled) finishes.
	ExportDoneMsg struct {
		Path      string
		Photos    int
		Copied    int32
		Total     int32
		Bytes     int64
		Inventory []model.PhotoInfo
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateExporting {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				paths, err := parsePaths(m.textInput.Value())
				if err != nil {
					m.state = StateError
					m.err = err
					return m, nil
				}
				m.state = StateExporting
				m.events = make(chan gallery.ProgressEvent, 64)
				m.gallery = m.newGallery(paths)
				return m, tea.Batch(m.startExport(), waitForEvent(m.events), m.tickProgress(), m.spinner.Tick)
			}

		case "f2":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "f3":
			if m.state == StateInput {
				m.showInventory = !m.showInventory
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for new export
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.gallery = nil
				m.events = nil
				m.copiedFiles = 0
				m.totalFiles = 0
				m.copiedBytes = 0
				m.exportPath = ""
				m.photoCount = 0
				m.inventory = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == gallery.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case ExportDoneMsg:
		m.copiedFiles = msg.Copied
		m.totalFiles = msg.Total
		m.copiedBytes = msg.Bytes
		m.exportPath = msg.Path
		m.photoCount = msg.Photos
		m.inventory = msg.Inventory
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the gallery
		if m.gallery != nil && m.state == StateExporting {
			copied, total, n := m.gallery.GetProgress()
			m.copiedFiles = copied
			m.totalFiles = total
			m.copiedBytes = n

			var percent float64
			if total > 0 {
				percent = float64(copied) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent delivers the next progress event, or nothing once the
// channel is closed.
func waitForEvent(events <-chan gallery.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Photo Gallery Exporter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build a static HTML gallery from your photos"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter photo paths (separated by spaces):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}
	inventoryCheck := "[ ]"
	if m.showInventory {
		inventoryCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (f2)\n", verboseCheck))
	b.WriteString(fmt.Sprintf("  %s Photo inventory (f3)\n", inventoryCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Export directory: %s", m.exportDirectory())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Exporting gallery..."))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.copiedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Photos: %d/%d | Copied: %s",
		m.copiedFiles,
		m.totalFiles,
		humanize.Bytes(uint64(m.copiedBytes)),
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Gallery exported!\n\n"+
			"Page: %s\n"+
			"Photos: %d\n"+
			"Size: %s",
		m.exportPath,
		m.photoCount,
		humanize.Bytes(uint64(m.totalSize())),
	))
	b.WriteString(box)
	b.WriteString("\n")

	for _, info := range m.inventory {
		line := fmt.Sprintf("  %s  %s  %s", info.Name, info.Dimensions(), humanize.Bytes(uint64(info.Size)))
		if info.Err != nil {
			b.WriteString(warningStyle.Render(line))
		} else {
			b.WriteString(photoStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case gallery.LevelError:
			style = errorStyle
			prefix = "✗"
		case gallery.LevelWarning:
			style = warningStyle
			prefix = "!"
		case gallery.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case gallery.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: export • f2: verbose • f3: inventory • esc: quit"
	case StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new gallery • q: quit"
	}
	return ""
}

func (m Model) exportDirectory() string {
	if m.settings.ExportDirectory != "" {
		return m.settings.ExportDirectory
	}
	return gallery.DefaultDirectory()
}

func (m Model) totalSize() int64 {
	if len(m.inventory) > 0 {
		return model.TotalSize(m.inventory)
	}
	return m.copiedBytes
}

func (m Model) newGallery(paths []string) *gallery.Gallery {
	events := m.events
	return gallery.New(paths,
		gallery.WithProbeLimit(m.settings.ProbeLimit()),
		gallery.WithProgress(func(event gallery.ProgressEvent) {
			// Drop events rather than stall the export when the UI lags behind
			select {
			case events <- event:
			default:
			}
		}),
	)
}

// startExport runs the export in the background.
func (m Model) startExport() tea.Cmd {
	g := m.gallery
	ctx := m.ctx
	events := m.events
	dir := m.exportDirectory()
	inventory := m.showInventory

	return func() tea.Msg {
		defer close(events)

		err := g.Export(ctx, dir)

		var infos []model.PhotoInfo
		if err == nil && inventory {
			infos, err = g.Inventory(ctx)
		}

		copied, total, n := g.GetProgress()
		return ExportDoneMsg{
			Path:      g.ExportPath(),
			Photos:    len(g.Photos()),
			Copied:    copied,
			Total:     total,
			Bytes:     n,
			Inventory: infos,
			Err:       err,
		}
	}
}

// parsePaths splits whitespace-separated input into absolute paths,
// expanding a leading "~/" to the home directory.
func parsePaths(input string) ([]string, error) {
	fields := strings.Fields(input)
	paths := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.HasPrefix(field, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to expand %s: %w", field, err)
			}
			field = filepath.Join(home, field[2:])
		}
		abs, err := filepath.Abs(field)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
