// Package tui provides a Bubble Tea terminal user interface for albumforge.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/corvess/albumforge/internal/build"
	"github.com/corvess/albumforge/internal/config"
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

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StatePlanning
	StateBuilding
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   build.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state       State
	assetsInput textinput.Model
	outputInput textinput.Model
	focusOutput bool
	spinner     spinner.Model
	progress    progress.Model
	settings    *config.Settings
	logs        []LogEntry
	albumName   string
	err         error

	// Build context
	ctx    context.Context
	cancel context.CancelFunc

	// Build manager reference
	manager *build.Manager

	// Build progress
	builtTracks int32
	totalTracks int32

	// Options
	playlist bool
	verbose  bool
	dryRun   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	assets := textinput.New()
	assets.Placeholder = "/path/to/extracted/assets"
	assets.Focus()
	assets.CharLimit = 500
	assets.Width = 60

	output := textinput.New()
	output.Placeholder = "/path/to/album/output"
	output.CharLimit = 500
	output.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateInput,
		assetsInput: assets,
		outputInput: output,
		spinner:     sp,
		progress:    prog,
		settings:    settings,
		logs:        make([]LogEntry, 0),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when build progress updates.
	ProgressMsg struct {
		Event build.ProgressEvent
	}

	// PlanDoneMsg is sent when plan resolution completes.
	PlanDoneMsg struct {
		Album   string
		Manager *build.Manager
		Err     error
	}

	// BuildDoneMsg is sent when the whole album run finishes.
	BuildDoneMsg struct {
		Built int32
		Total int32
		Err   error
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
			if m.state == StateBuilding || m.state == StatePlanning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab":
			if m.state == StateInput {
				m.focusOutput = !m.focusOutput
				if m.focusOutput {
					m.assetsInput.Blur()
					m.outputInput.Focus()
				} else {
					m.outputInput.Blur()
					m.assetsInput.Focus()
				}
			}

		case "enter":
			if m.state == StateInput && m.assetsInput.Value() != "" && m.outputInput.Value() != "" {
				m.state = StatePlanning
				return m, tea.Batch(m.initializeBuild(), m.spinner.Tick)
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "ctrl+n":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.albumName = ""
				m.err = nil
				m.builtTracks = 0
				m.totalTracks = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.assetsInput.Focus()
				m.outputInput.Blur()
				m.focusOutput = false
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == build.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case PlanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.albumName = msg.Album
			m.manager = msg.Manager
			m.state = StateBuilding
			cmds = append(cmds, m.startBuild(), m.tickProgress())
		}

	case BuildDoneMsg:
		m.builtTracks = msg.Built
		m.totalTracks = msg.Total
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateBuilding {
			built, total := m.manager.Progress()
			m.builtTracks = built
			m.totalTracks = total

			var percent float64
			if total > 0 {
				percent = float64(built) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		if m.focusOutput {
			m.outputInput, cmd = m.outputInput.Update(msg)
		} else {
			m.assetsInput, cmd = m.assetsInput.Update(msg)
		}
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

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Albumforge"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build a tagged soundtrack album from game audio assets"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StatePlanning:
		b.WriteString(m.viewPlanning())
	case StateBuilding:
		b.WriteString(m.viewBuilding())
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

	b.WriteString(subtitleStyle.Render("Assets directory:"))
	b.WriteString("\n")
	b.WriteString(m.assetsInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Output directory:"))
	b.WriteString("\n")
	b.WriteString(m.outputInput.View())
	b.WriteString("\n\n")

	// Options
	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	dryRunCheck := "[ ]"
	if m.dryRun {
		dryRunCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create playlist (ctrl+p)\n", playlistCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+v)\n", verboseCheck))
	b.WriteString(fmt.Sprintf("  %s Dry run, print renderer invocations (ctrl+n)\n", dryRunCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output format: %s", m.settings.OutputFormat)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewPlanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Resolving album plan..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewBuilding() string {
	var b strings.Builder

	if m.albumName != "" {
		b.WriteString(albumStyle.Render(fmt.Sprintf("♪ %s", m.albumName)))
		b.WriteString("\n\n")
	}

	var percent float64
	if m.totalTracks > 0 {
		percent = float64(m.builtTracks) / float64(m.totalTracks)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d/%d", m.builtTracks, m.totalTracks)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Album Complete!\n\n"+
			"%s\n"+
			"Tracks: %d/%d",
		m.albumName,
		m.builtTracks,
		m.totalTracks,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case build.LevelError:
			style = errorStyle
			prefix = "✗"
		case build.LevelWarning:
			style = warningStyle
			prefix = "!"
		case build.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case build.LevelInfo:
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
		return "enter: start • tab: switch field • ctrl+p: playlist • ctrl+n: dry run • esc: quit"
	case StatePlanning, StateBuilding:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// initializeBuild resolves the plan and creates the manager.
func (m *Model) initializeBuild() tea.Cmd {
	assetsDir := m.assetsInput.Value()
	return func() tea.Msg {
		settings := *m.settings
		if m.playlist {
			settings.CreatePlaylist = true
		}

		// Progress events are collected but not sent directly; the TUI
		// polls for progress via TickMsg.
		manager := build.NewManager(&settings, nil)
		if m.dryRun {
			manager.SetDryRun(true)
		}

		if err := manager.Initialize(m.ctx, assetsDir); err != nil {
			return PlanDoneMsg{Err: err}
		}

		return PlanDoneMsg{
			Album:   manager.AlbumName(),
			Manager: manager,
		}
	}
}

// startBuild runs the album build in the background.
func (m *Model) startBuild() tea.Cmd {
	outputDir := m.outputInput.Value()
	return func() tea.Msg {
		if m.manager == nil {
			return BuildDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.Run(m.ctx, outputDir)
		built, total := m.manager.Progress()

		return BuildDoneMsg{
			Built: built,
			Total: total,
			Err:   err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
