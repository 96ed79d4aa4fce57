package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"precisionpercent/config"
	appmodel "precisionpercent/model"
	"precisionpercent/ollama"
	"precisionpercent/provider"
	"precisionpercent/visual"
)

type focusField int

const (
	focusInputA focusField = iota
	focusInputB
	focusQuery
	focusCount
)

type providerStatus int

const (
	providerUnknown providerStatus = iota
	providerReachable
	providerUnreachable
)

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI Components
	inputA   textinput.Model
	inputB   textinput.Model
	textarea textarea.Model
	focus    focusField

	// Window state
	width  int
	height int
	ready  bool

	// Loading spinner shown while a question is pending
	loadingSpinner spinner.Model

	// Gauge animation
	gauge     *visual.Animator
	animating bool

	showHelp  bool
	showAbout bool

	// Model selector
	showModelSelector bool
	modelList         []ollama.ModelInfo
	selectedModelIdx  int
	modelListLoading  bool
	modelListErr      error
	modelFilterInput  textinput.Model
	filteredModelList []ollama.ModelInfo

	// Status line
	provider   providerStatus
	statusMsg  string
	statusErr  bool
	flashCount int
}

func NewAppView(dataModel *appmodel.Model) AppView {
	inputA := newNumberInput()
	inputB := newNumberInput()
	inputA.Focus()

	ta := textarea.New()
	ta.Placeholder = "Ask a percentage or finance question..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(60)

	// Custom KeyMap: Alt+Enter for newline, Enter alone does nothing (handled separately)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	modelFilterInput := textinput.New()
	modelFilterInput.Prompt = "Filter: "
	modelFilterInput.CharLimit = 64

	a := AppView{
		dataModel:        dataModel,
		inputA:           inputA,
		inputB:           inputB,
		textarea:         ta,
		focus:            focusInputA,
		loadingSpinner:   s,
		gauge:            visual.NewAnimator(),
		modelFilterInput: modelFilterInput,
	}
	a.applyModeLabels()
	return a
}

func newNumberInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = 32
	ti.Width = 24
	return ti
}

func (a AppView) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if cfg := a.dataModel.Config; cfg != nil && a.dataModel.Provider != nil {
		cmds = append(cmds, provider.PingProvider(cfg.Provider, cfg.BaseURL, cfg.APIKey))
	}

	return tea.Batch(cmds...)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading Precision Percent..."
	}

	// Modal rendering order (top to bottom layers):
	// 1. Help (always on top)
	// 2. Model selector
	// 3. About
	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	if a.showModelSelector {
		return a.renderModelSelector(a.width, a.height)
	}

	if a.showAbout {
		return renderAboutModal(a, a.width, a.height, a.dataModel.Version, a.dataModel.License)
	}

	calculator := lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderModeTabs(),
		a.renderInputs(),
		a.renderResultCard(),
		a.renderGauge(),
	)

	left := lipgloss.NewStyle().Width(a.leftColumnWidth()).Render(calculator)
	right := lipgloss.NewStyle().Width(a.rightColumnWidth()).Render(a.renderHistory())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderTitle(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		a.renderAssistant(),
		a.renderStatusBar(),
	)
}

func (a AppView) keys() *config.KeyBindingsConfig {
	if a.dataModel.Config != nil && a.dataModel.Config.Keybindings != nil {
		return a.dataModel.Config.Keybindings
	}
	return config.DefaultKeybindings()
}

// applyModeLabels updates the input captions for the current mode.
func (a *AppView) applyModeLabels() {
	a.inputA.Placeholder = a.dataModel.Mode.LabelA()
	a.inputB.Placeholder = a.dataModel.Mode.LabelB()
}

func (a *AppView) setFocus(f focusField) {
	a.focus = (f + focusCount) % focusCount

	a.inputA.Blur()
	a.inputB.Blur()
	a.textarea.Blur()

	switch a.focus {
	case focusInputA:
		a.inputA.Focus()
	case focusInputB:
		a.inputB.Focus()
	case focusQuery:
		a.textarea.Focus()
	}
}

func (a *AppView) closeAllModals() {
	a.showHelp = false
	a.showAbout = false
	a.showModelSelector = false

	if a.modelFilterInput.Focused() {
		a.modelFilterInput.Blur()
	}
}

func (a AppView) leftColumnWidth() int {
	return max(a.width*3/5, 40)
}

func (a AppView) rightColumnWidth() int {
	return max(a.width-a.leftColumnWidth()-1, 24)
}
