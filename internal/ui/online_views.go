package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- 视图渲染 ---

func (m *OnlineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	switch m.phase {
	case PhaseConnecting:
		content = m.connectingView()
	case PhaseMenu:
		content = m.menuView()
	case PhaseCreateForm:
		content = m.createFormView()
	case PhaseJoinName:
		content = m.joinNameView()
	case PhaseRoomList:
		content = m.roomListView()
	case PhaseWaiting:
		content = m.waitingView()
	case PhasePlaying:
		content = m.playingView()
	case PhaseMatchOver:
		content = m.matchOverView()
	case PhaseSeriesOver:
		content = m.seriesOverView()
	}

	return docStyle.Render(content)
}

func (m *OnlineModel) connectingView() string {
	s := "🔌 正在连接服务器..."
	if m.error != "" {
		s = errorStyle.Render(m.error)
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(s)
}

func (m *OnlineModel) menuView() string {
	var sb strings.Builder

	title := titleStyle("🎲 Hi-Lo 猜数对战")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if m.nickname != "" {
		welcome := fmt.Sprintf("欢迎, %s!", m.nickname)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, welcome))
		sb.WriteString("\n\n")
	}

	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"请选择:",
		"",
		"  1. 创建房间",
		"  2. 加入房间",
	))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入选项 (1-2)"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) createFormView() string {
	var sb strings.Builder

	title := titleStyle("🏠 创建房间")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var prompt string
	switch m.step {
	case stepPlayerName:
		prompt = "你的玩家名:"
		m.input.Placeholder = "如 Alice"
	case stepRoomName:
		prompt = "房间名 (回车使用默认):"
		m.input.Placeholder = fmt.Sprintf("%s 的房间", m.playerName)
	case stepMinNumber:
		prompt = "猜数区间下界 (默认 1):"
		m.input.Placeholder = "1"
	case stepMaxNumber:
		prompt = "猜数区间上界 (默认 100):"
		m.input.Placeholder = "100"
	case stepTotalGames:
		prompt = "系列赛局数，奇数 (默认 3):"
		m.input.Placeholder = "3"
	}

	form := boxStyle.Render(prompt + "\n\n" + m.input.View())
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form))

	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render("按 ESC 返回主菜单")))

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) joinNameView() string {
	var sb strings.Builder

	title := titleStyle("🚪 加入房间")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	m.input.Placeholder = "如 Bob"
	form := boxStyle.Render("你的玩家名:\n\n" + m.input.View())
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form))

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) roomListView() string {
	var sb strings.Builder

	title := titleStyle("📋 房间列表")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if len(m.availableRooms) == 0 {
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "暂时没有可加入的房间"))
	} else {
		var list strings.Builder
		list.WriteString(fmt.Sprintf("%-20s %-8s %-12s %s\n", "房间名", "人数", "区间", "局数"))
		list.WriteString(strings.Repeat("─", 50) + "\n")
		for i, r := range m.availableRooms {
			cursor := "  "
			if i == m.selectedRoomIdx {
				cursor = "➤ "
			}
			list.WriteString(fmt.Sprintf("%s%-20s %d/%d      [%d - %d]      %d\n",
				cursor, r.RoomName, r.PlayerCount, r.MaxPlayers, r.MinNumber, r.MaxNumber, r.TotalGames))
		}
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(list.String())))
	}

	sb.WriteString("\n\n")
	m.input.Placeholder = "或直接输入房间号..."
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	sb.WriteString("\n\n")
	hint := "↑/↓ 选择  回车 加入  ESC 返回"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render(hint)))

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) waitingView() string {
	var sb strings.Builder

	title := titleStyle("🏠 " + m.roomName)
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	info := fmt.Sprintf("区间 [%d - %d]  ·  %d 局 %d 胜\n\n玩家: %s\n\n⏳ 等待对手加入...",
		m.rangeMin, m.rangeMax, m.totalGames, m.totalGames/2+1, strings.Join(m.roomPlayers, ", "))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(info)))

	sb.WriteString("\n\n")
	roomLine := fmt.Sprintf("房间号: %s (告诉你的对手)", m.roomID)
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render(roomLine)))

	if m.statusLine != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.statusLine))
	}

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) playingView() string {
	var sb strings.Builder

	title := titleStyle(fmt.Sprintf("🎮 第 %d/%d 局 · 第 %d 回合", m.gameNumber, m.totalGames, m.roundNumber))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(fmt.Sprintf("神秘数字在 [%d - %d] 之间\n", m.rangeMin, m.rangeMax))
	body.WriteString(fmt.Sprintf("已尝试 %d 次\n", m.attempts))

	if m.lastResult != "" {
		body.WriteString("\n" + m.styledFeedback(m.lastResult) + "\n")
	}
	if len(m.scores) > 0 {
		body.WriteString("\n" + m.renderScores())
	}

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body.String())))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入你的猜测..."
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))

	if m.statusLine != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.statusLine))
	}

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) matchOverView() string {
	var sb strings.Builder

	title := titleStyle("🏆 本局结束")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(fmt.Sprintf("%s 猜中了神秘数字 %d！\n\n", m.winnerName, m.mysteryNumber))
	body.WriteString(m.renderScores())
	body.WriteString(fmt.Sprintf("\n系列赛进度: %d/%d", m.gameNumber, m.totalGames))

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body.String())))
	sb.WriteString("\n\n")

	if len(m.waiting) > 0 {
		ready := fmt.Sprintf("已准备: %s  ·  等待: %s",
			strings.Join(m.readyPlayers, ", "), strings.Join(m.waiting, ", "))
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ready))
		sb.WriteString("\n\n")
	}

	hint := "回车 进入下一局  ·  ESC 离开房间"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render(hint)))

	m.appendError(&sb)
	return sb.String()
}

func (m *OnlineModel) seriesOverView() string {
	var sb strings.Builder

	title := titleStyle("🎉 系列赛结束")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(fmt.Sprintf("最后一局由 %s 拿下（神秘数字 %d）\n\n", m.winnerName, m.mysteryNumber))
	body.WriteString(m.renderScores())
	if champ := m.seriesChampion(); champ != "" {
		body.WriteString("\n" + successStyle.Render(fmt.Sprintf("🏆 系列赛冠军: %s", champ)))
	}

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body.String())))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hintStyle.Render("回车 返回主菜单")))

	m.appendError(&sb)
	return sb.String()
}

// renderScores 渲染系列赛比分
func (m *OnlineModel) renderScores() string {
	var sb strings.Builder
	sb.WriteString("比分:\n")
	for _, s := range m.scores {
		sb.WriteString(fmt.Sprintf("  %s: %d 胜\n", s.Name, s.Wins))
	}
	return sb.String()
}

// seriesChampion 从比分中找出胜场最多的玩家；平局返回空串
func (m *OnlineModel) seriesChampion() string {
	best, bestWins, tied := "", -1, false
	for _, s := range m.scores {
		switch {
		case s.Wins > bestWins:
			best, bestWins, tied = s.Name, s.Wins, false
		case s.Wins == bestWins:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best
}

// styledFeedback 按反馈内容着色
func (m *OnlineModel) styledFeedback(msg string) string {
	switch {
	case strings.HasPrefix(msg, "HI"):
		return higherStyle.Render(msg)
	case strings.HasPrefix(msg, "LO"):
		return lowerStyle.Render(msg)
	default:
		return successStyle.Render(msg)
	}
}

func (m *OnlineModel) appendError(sb *strings.Builder) {
	if m.error != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.error)))
	}
}
