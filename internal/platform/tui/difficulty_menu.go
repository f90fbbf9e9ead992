package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tabletop/internal/config"
)

// difficultyOption is one row of the board picker.
type difficultyOption struct {
	preset config.DifficultyPreset // "" means the configured board
	board  config.MinesweeperBoard
}

// DifficultyModel lets users pick a Minesweeper board preset.
type DifficultyModel struct {
	options  []difficultyOption
	cursor   int
	width    int
	height   int
	selected *config.DifficultyPreset
	quitting bool
	back     bool
}

// NewDifficultyModel builds the picker from the Minesweeper config at configPath.
// Presets missing from the config are not offered.
func NewDifficultyModel(configPath string, width, height int) DifficultyModel {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}

	options := make([]difficultyOption, 0, len(config.Presets())+1)
	for _, p := range config.Presets() {
		board, ok := cfg.Presets[string(p)]
		if !ok {
			continue
		}
		options = append(options, difficultyOption{preset: p, board: board})
	}
	options = append(options, difficultyOption{board: cfg.Board})

	return DifficultyModel{
		options: options,
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(NewKeyMapper().MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleAction(action MenuAction) (DifficultyModel, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := m.options[m.cursor].preset
		m.selected = &preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board picker.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M I N E S W E E P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %2dx%-2d  %2.0f%% mines",
			cursor, opt.preset.Label(), opt.board.Rows, opt.board.Cols, opt.board.MineFraction*100)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}
