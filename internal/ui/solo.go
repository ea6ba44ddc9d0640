package ui

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/hi-lo/internal/game"
)

// 单机模式阶段
type soloPhase int

const (
	soloPhaseSetup soloPhase = iota
	soloPhasePlaying
	soloPhaseWon
)

// SoloModel 单机模式：本地对着程序猜，不连服务器
type SoloModel struct {
	phase soloPhase
	step  formStep
	error string

	playerName string
	minNumber  int
	maxNumber  int

	session    *game.Solo
	lastResult *game.GuessResult
	history    []string

	input  textinput.Model
	width  int
	height int
}

// NewSoloModel 创建单机模式 model
func NewSoloModel() *SoloModel {
	ti := textinput.New()
	ti.CharLimit = 20
	ti.Width = 24
	ti.Focus()

	return &SoloModel{
		phase: soloPhaseSetup,
		step:  stepPlayerName,
		input: ti,
	}
}

func (m *SoloModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SoloModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.handleEnter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SoloModel) handleEnter() {
	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.error = ""

	switch m.phase {
	case soloPhaseSetup:
		m.handleSetupInput(input)

	case soloPhasePlaying:
		value, err := strconv.Atoi(input)
		if err != nil {
			m.error = "请输入一个整数"
			return
		}
		result, guessErr := m.session.Guess(value)
		if guessErr != nil {
			m.error = guessErr.Error()
			return
		}
		m.lastResult = result
		m.history = append(m.history, fmt.Sprintf("#%d  %d  →  %s", result.Attempts, value, result.Message))
		if result.Won {
			m.phase = soloPhaseWon
		}

	case soloPhaseWon:
		// 回车再来一局：保留玩家名和区间
		m.startSession()
	}
}

// handleSetupInput 开局设置：玩家名 → 区间下界 → 区间上界
func (m *SoloModel) handleSetupInput(input string) {
	switch m.step {
	case stepPlayerName:
		if input == "" {
			m.error = "请输入玩家名"
			return
		}
		m.playerName = input
		m.step = stepMinNumber

	case stepMinNumber:
		n, err := strconv.Atoi(input)
		if input == "" {
			n = 1
		} else if err != nil {
			m.error = "请输入一个整数"
			return
		}
		m.minNumber = n
		m.step = stepMaxNumber

	case stepMaxNumber:
		n, err := strconv.Atoi(input)
		if input == "" {
			n = 100
		} else if err != nil {
			m.error = "请输入一个整数"
			return
		}
		m.maxNumber = n
		m.startSession()
	}
}

// startSession 用当前设置开一局
func (m *SoloModel) startSession() {
	r, err := game.NewRange(m.minNumber, m.maxNumber)
	if err != nil {
		m.error = err.Error()
		m.phase = soloPhaseSetup
		m.step = stepMinNumber
		return
	}
	player, err := game.NewPlayer(m.playerName)
	if err != nil {
		m.error = err.Error()
		m.phase = soloPhaseSetup
		m.step = stepPlayerName
		return
	}

	mystery := rand.IntN(r.Max-r.Min+1) + r.Min
	m.session = game.NewSolo(player, r, mystery)
	m.lastResult = nil
	m.history = nil
	m.phase = soloPhasePlaying
	m.input.Focus()
}

func (m *SoloModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.phase {
	case soloPhaseSetup:
		content = m.setupView()
	case soloPhasePlaying:
		content = m.playView()
	case soloPhaseWon:
		content = m.wonView()
	}
	return docStyle.Render(content)
}

func (m *SoloModel) setupView() string {
	var sb strings.Builder

	title := titleStyle("🎲 Hi-Lo 单机模式")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var prompt string
	switch m.step {
	case stepPlayerName:
		prompt = "你的玩家名:"
		m.input.Placeholder = "如 Alice"
	case stepMinNumber:
		prompt = "猜数区间下界 (默认 1):"
		m.input.Placeholder = "1"
	case stepMaxNumber:
		prompt = "猜数区间上界 (默认 100):"
		m.input.Placeholder = "100"
	}

	form := boxStyle.Render(prompt + "\n\n" + m.input.View())
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form))

	m.soloAppendError(&sb)
	return sb.String()
}

func (m *SoloModel) playView() string {
	var sb strings.Builder

	r := m.session.Match.Range
	title := titleStyle(fmt.Sprintf("🎮 %s, 神秘数字在 %s 之间", m.playerName, r))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var body strings.Builder
	if len(m.history) == 0 {
		body.WriteString("还没有猜测，开始吧！\n")
	} else {
		for _, line := range m.history {
			body.WriteString(line + "\n")
		}
	}
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body.String())))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入你的猜测..."
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render("ESC 退出")))

	m.soloAppendError(&sb)
	return sb.String()
}

func (m *SoloModel) wonView() string {
	var sb strings.Builder

	title := titleStyle("🎉 恭喜！")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	body := fmt.Sprintf("%s\n\n共用了 %d 次猜测", m.lastResult.Message, m.lastResult.Attempts)
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render("回车 再来一局  ·  ESC 退出")))

	m.soloAppendError(&sb)
	return sb.String()
}

func (m *SoloModel) soloAppendError(sb *strings.Builder) {
	if m.error != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.error)))
	}
}
