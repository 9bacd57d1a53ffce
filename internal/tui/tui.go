package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/engine"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/narrator"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/suspects"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/verdict"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type sessionState int

const (
	stateExploring sessionState = iota
	stateAccusing
	stateVerdict
	stateError
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	index     *suspects.Index
	narrator  narrator.Narrator
	logger    *zap.Logger
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	menu      string
	verdict   verdict.Verdict
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	clueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	sustainedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	unsustainedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF5F5F")).
				Bold(true)
)

func NewModel(eng *engine.Engine, index *suspects.Index, n narrator.Narrator, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Nome do suspeito..."
	ti.CharLimit = 63
	ti.Width = 40

	m := model{
		state:     stateExploring,
		engine:    eng,
		index:     index,
		narrator:  n,
		logger:    logger,
		textInput: ti,
		viewport:  viewport.New(80, 20),
	}

	r, err := eng.Start()
	if err != nil {
		m.err = err
		m.state = stateError
		return m
	}
	m.appendReport(r)
	if eng.Stopped() {
		m.beginAccusation()
	}
	return m
}

func (m model) Init() tea.Cmd {
	if room := m.engine.Current(); room != nil {
		return m.narrate(room)
	}
	return nil
}

type narrationMsg struct {
	room string
	text string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

		switch m.state {
		case stateExploring:
			if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
				return m, nil
			}
			return m.step(engine.ParseAction(string(msg.Runes)))

		case stateAccusing:
			if msg.Type == tea.KeyEnter {
				return m.accuse(m.textInput.Value())
			}

		case stateVerdict, stateError:
			if msg.Type == tea.KeyEnter || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()

	case narrationMsg:
		if room := m.engine.Current(); room == nil || room.Name != msg.room {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("narration failed", zap.String("room", msg.room), zap.Error(msg.err))
			return m, nil
		}
		if msg.text != "" {
			m.appendLine(narrationStyle.Width(m.logWidth()).Render(msg.text))
		}
		return m, nil
	}

	if m.state == stateAccusing {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) step(action engine.Action) (tea.Model, tea.Cmd) {
	m.appendLine(userStyle.Width(m.logWidth()).Render("> " + action.String()))

	r, err := m.engine.Step(action)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.appendReport(r)

	var cmd tea.Cmd
	if r.Entered() {
		cmd = m.narrate(r.Room)
	}
	if m.engine.Stopped() {
		m.beginAccusation()
		return m, tea.Batch(cmd, textinput.Blink)
	}
	return m, cmd
}

func (m *model) beginAccusation() {
	m.menu = ""
	m.appendLine(titleStyle.Render("PISTAS COLETADAS"))
	m.appendLine(strings.Join(verdict.ClueList(m.engine.Clues()), "\n"))
	if names := m.index.Suspects(); len(names) > 0 {
		m.appendLine("Suspeitos: " + strings.Join(names, ", "))
	}
	m.appendLine("Quem voce acusa?")
	m.state = stateAccusing
	m.textInput.Focus()
}

func (m model) accuse(line string) (tea.Model, tea.Cmd) {
	name, err := verdict.ParseAccusation(line)
	if err != nil {
		m.appendLine("Entrada invalida. Digite o nome de um suspeito.")
		return m, nil
	}
	m.textInput.Reset()
	m.textInput.Blur()

	m.verdict = verdict.Judge(m.engine.Clues(), m.index, name)
	m.logger.Info("verdict",
		zap.String("accused", m.verdict.Accused),
		zap.Int("count", m.verdict.Count),
		zap.Stringer("outcome", m.verdict.Outcome),
	)

	m.appendLine(userStyle.Width(m.logWidth()).Render("> " + name))
	style := unsustainedStyle
	if m.verdict.Sustained() {
		style = sustainedStyle
	}
	m.appendLine(style.Width(m.logWidth()).Render(m.verdict.Message()))
	m.state = stateVerdict
	return m, nil
}

func (m *model) appendReport(r engine.Report) {
	for _, line := range r.Lines() {
		if r.Clue != "" && strings.HasSuffix(line, r.Clue) {
			line = clueStyle.Render(line)
		}
		m.appendLine(gameStyle.Width(m.logWidth()).Render(line))
	}
	if r.Room != nil && !r.Stopped {
		m.menu = r.Menu()
	}
}

func (m *model) appendLine(s string) {
	m.gameLog += s + "\n\n"
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	if m.width == 0 {
		return 80
	}
	return int(float64(m.width) * 0.70)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateExploring:
		help := helpStyle.Render(m.menu + "   (esc para sair do jogo)")
		s = lipgloss.JoinVertical(lipgloss.Left, m.mainView(), "\n"+help)

	case stateAccusing:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.mainView(),
			"\n"+m.textInput.View(),
			"\n"+helpStyle.Render("Digite o nome e pressione Enter."),
		)

	case stateVerdict:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.mainView(),
			"\n"+helpStyle.Render("Pressione Enter para encerrar."),
		)

	case stateError:
		s = fmt.Sprintf("\n  Erro: %v\n\nPressione Esc para sair.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) mainView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderState())
}

func (m model) renderState() string {
	location := titleStyle.Render("LOCAL") + "\n"
	if room := m.engine.Current(); room != nil {
		location += room.Name
	}
	location += "\n\n"

	pathTitle := titleStyle.Render("CAMINHO") + "\n"
	path := strings.Join(m.engine.Path(), "\n") + "\n\n"

	clueTitle := titleStyle.Render("PISTAS") + "\n"
	clueLines := ""
	if m.engine.Clues().Len() == 0 {
		clueLines = "(nenhuma)"
	} else {
		for clue := range m.engine.Clues().All() {
			clueLines += "- " + clue + "\n"
		}
	}

	content := location + pathTitle + path + clueTitle + clueLines

	stateWidth := int(float64(m.width) * 0.27)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	return m.gameLog
}

func (m model) narrate(room *mansion.Room) tea.Cmd {
	if m.narrator == nil {
		return nil
	}
	n := m.narrator
	return func() tea.Msg {
		text, err := n.Describe(context.Background(), room)
		return narrationMsg{room: room.Name, text: text, err: err}
	}
}

// Program builds the full-screen program. Extra options are applied after
// the alternate screen, so callers can swap input and output.
func Program(eng *engine.Engine, index *suspects.Index, n narrator.Narrator, logger *zap.Logger, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewModel(eng, index, n, logger), opts...)
}

func Run(eng *engine.Engine, index *suspects.Index, n narrator.Narrator, logger *zap.Logger, opts ...tea.ProgramOption) error {
	_, err := Program(eng, index, n, logger, opts...).Run()
	return err
}
