package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/hi-lo/internal/network/client"
	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// 游戏阶段
type GamePhase int

const (
	PhaseConnecting GamePhase = iota
	PhaseMenu
	PhaseCreateForm
	PhaseJoinName
	PhaseRoomList
	PhaseWaiting
	PhasePlaying
	PhaseMatchOver
	PhaseSeriesOver
)

// 创建房间表单的步骤
type formStep int

const (
	stepPlayerName formStep = iota
	stepRoomName
	stepMinNumber
	stepMaxNumber
	stepTotalGames
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ClearErrorMsg 清除错误消息
type ClearErrorMsg struct{}

// OnlineModel 联网模式的 model
type OnlineModel struct {
	client *client.Client
	phase  GamePhase
	error  string

	// 连接信息
	connID   string
	nickname string

	// 表单状态
	step       formStep
	playerName string
	roomName   string
	minNumber  int
	maxNumber  int

	// 房间列表
	availableRooms  []protocol.RoomSummary
	selectedRoomIdx int

	// 房间与比赛状态
	roomID      string
	roomPlayers []string
	gameNumber  int
	totalGames  int
	rangeMin    int
	rangeMax    int
	attempts    int
	roundNumber int
	lastResult  string
	statusLine  string
	scores      []protocol.PlayerScore

	// 比赛结束状态
	winnerName    string
	mysteryNumber int
	seriesOver    bool
	readyPlayers  []string
	waiting       []string

	// 网络状态
	latency int64

	// UI 组件
	input  textinput.Model
	width  int
	height int
}

// NewOnlineModel 创建联网模式 model
func NewOnlineModel(serverURL string) *OnlineModel {
	ti := textinput.New()
	ti.CharLimit = 20
	ti.Width = 24
	ti.Focus()

	return &OnlineModel{
		client: client.NewClient(serverURL),
		phase:  PhaseConnecting,
		input:  ti,
	}
}

func (m *OnlineModel) Init() tea.Cmd {
	return tea.Batch(m.connectToServer(), textinput.Blink)
}

// connectToServer 连接服务器
func (m *OnlineModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

// listenForMessages 监听服务器消息
func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, returnCmd := m.handleKeyPress(msg)
		if handled {
			return m, returnCmd
		}

	case ConnectedMsg:
		m.phase = PhaseMenu
		m.connID = m.client.ConnID
		m.nickname = m.client.Nickname
		m.client.StartHeartbeat()
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.error = fmt.Sprintf("无法连接到服务器: %v\n\n按 ESC 退出", msg.Err)
		m.phase = PhaseConnecting

	case ClearErrorMsg:
		m.error = ""

	case ServerMessage:
		cmd = m.handleServerMessage(msg.Msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// 继续监听
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *OnlineModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.handleEscKey()
	case tea.KeyUp:
		if m.phase == PhaseRoomList && m.selectedRoomIdx > 0 {
			m.selectedRoomIdx--
			return true, nil
		}
	case tea.KeyDown:
		if m.phase == PhaseRoomList && m.selectedRoomIdx < len(m.availableRooms)-1 {
			m.selectedRoomIdx++
			return true, nil
		}
	case tea.KeyEnter:
		cmd := m.handleEnter()
		return true, cmd
	}
	return false, nil
}

// handleEscKey 处理 ESC 键
func (m *OnlineModel) handleEscKey() (bool, tea.Cmd) {
	switch m.phase {
	case PhaseCreateForm, PhaseJoinName, PhaseRoomList:
		// 返回主菜单
		m.backToMenu()
		return true, nil

	case PhaseWaiting, PhaseMatchOver, PhaseSeriesOver:
		// 离开房间并返回主菜单
		_ = m.client.LeaveRoom()
		m.backToMenu()
		return true, nil

	case PhasePlaying:
		// 对局进行中，ESC 不退出，避免误操作
		m.error = "对局进行中，无法退出！"
		return true, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return ClearErrorMsg{}
		})
	}

	m.client.Close()
	return true, tea.Quit
}

// backToMenu 清空房间状态并回到主菜单
func (m *OnlineModel) backToMenu() {
	m.phase = PhaseMenu
	m.error = ""
	m.statusLine = ""
	m.lastResult = ""
	m.roomID = ""
	m.roomPlayers = nil
	m.scores = nil
	m.readyPlayers = nil
	m.waiting = nil
	m.seriesOver = false
	m.input.Reset()
	m.input.Focus()
}

// handleEnter 处理回车键
func (m *OnlineModel) handleEnter() tea.Cmd {
	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.error = ""

	switch m.phase {
	case PhaseMenu:
		// 主菜单：1=创建房间, 2=加入房间
		switch input {
		case "1":
			m.phase = PhaseCreateForm
			m.step = stepPlayerName
		case "2":
			m.phase = PhaseJoinName
		}

	case PhaseCreateForm:
		m.handleCreateFormInput(input)

	case PhaseJoinName:
		if input == "" {
			m.error = "请输入玩家名"
			return nil
		}
		m.playerName = input
		m.phase = PhaseRoomList
		m.selectedRoomIdx = 0
		_ = m.client.GetRoomList()

	case PhaseRoomList:
		if input == "" {
			// 没有输入，加入选中的房间
			if len(m.availableRooms) > 0 && m.selectedRoomIdx < len(m.availableRooms) {
				_ = m.client.JoinRoom(m.availableRooms[m.selectedRoomIdx].RoomID, m.playerName)
			}
		} else {
			// 有输入，直接加入输入的房间号
			_ = m.client.JoinRoom(input, m.playerName)
		}

	case PhasePlaying:
		value, err := strconv.Atoi(input)
		if err != nil {
			m.error = "请输入一个整数"
			return nil
		}
		_ = m.client.MakeGuess(value)

	case PhaseMatchOver:
		// 回车确认进入下一局
		_ = m.client.NextGame()

	case PhaseSeriesOver:
		// 系列赛结束，回车离开房间返回主菜单
		_ = m.client.LeaveRoom()
		m.backToMenu()
	}

	return nil
}

// handleCreateFormInput 创建房间表单：逐步收集字段
func (m *OnlineModel) handleCreateFormInput(input string) {
	switch m.step {
	case stepPlayerName:
		if input == "" {
			m.error = "请输入玩家名"
			return
		}
		m.playerName = input
		m.step = stepRoomName

	case stepRoomName:
		if input == "" {
			input = fmt.Sprintf("%s 的房间", m.playerName)
		}
		m.roomName = input
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
		if n-m.minNumber < 2 {
			m.error = fmt.Sprintf("上界至少要比下界大 2（下界 %d）", m.minNumber)
			return
		}
		m.maxNumber = n
		m.step = stepTotalGames

	case stepTotalGames:
		n, err := strconv.Atoi(input)
		if input == "" {
			n = 3
		} else if err != nil || n < 1 || n%2 == 0 {
			m.error = "局数必须是正奇数（如 1、3、5）"
			return
		}
		_ = m.client.CreateRoom(m.roomName, m.playerName, m.minNumber, m.maxNumber, n)
	}
}
