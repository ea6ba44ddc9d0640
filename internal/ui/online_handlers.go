package ui

import (
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/hi-lo/internal/network/protocol"
)

// handleServerMessage 处理服务器推送的消息
func (m *OnlineModel) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgPong:
		m.latency = m.client.GetLatency()

	case protocol.MsgRoomJoined:
		var p protocol.RoomJoinedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.roomID = p.Room.RoomID
		m.roomName = p.Room.RoomName
		m.roomPlayers = p.Players
		m.rangeMin = p.Room.MinNumber
		m.rangeMax = p.Room.MaxNumber
		m.totalGames = p.Room.TotalGames
		m.phase = PhaseWaiting
		m.input.Reset()

	case protocol.MsgPlayerJoined:
		var p protocol.PlayerJoinedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.roomPlayers = append(m.roomPlayers, p.PlayerName)
		m.statusLine = fmt.Sprintf("👤 %s 加入了房间 (%d/%d)", p.PlayerName, p.PlayerCount, p.MaxPlayers)

	case protocol.MsgPlayerLeft:
		var p protocol.PlayerLeftPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.removePlayer(p.PlayerName)
		m.statusLine = "👋 " + p.Message

	case protocol.MsgRoomList:
		var p protocol.RoomListPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.availableRooms = p.Rooms
		if m.selectedRoomIdx >= len(m.availableRooms) {
			m.selectedRoomIdx = 0
		}

	case protocol.MsgRoomCreated:
		// 大厅广播：正在看房间列表时刷新一次
		if m.phase == PhaseRoomList {
			_ = m.client.GetRoomList()
		}

	case protocol.MsgMatchStarted:
		var p protocol.MatchStartedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.rangeMin = p.MinNumber
		m.rangeMax = p.MaxNumber
		m.gameNumber = p.GameNumber
		m.totalGames = p.TotalGames
		m.roomPlayers = p.Players
		m.roundNumber = 1
		m.attempts = 0
		m.lastResult = ""
		m.statusLine = ""
		m.readyPlayers = nil
		m.waiting = nil
		m.phase = PhasePlaying
		m.input.Reset()
		m.input.Focus()

	case protocol.MsgGuessResult:
		var p protocol.GuessResultPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.attempts = p.Attempts
		m.lastResult = p.Message

	case protocol.MsgPlayerGuessed:
		var p protocol.PlayerGuessedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		if p.PlayerName != m.playerName {
			m.statusLine = fmt.Sprintf("%s 已完成猜测", p.PlayerName)
		}

	case protocol.MsgWaitingForOpponent:
		var p protocol.WaitingForOpponentPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.statusLine = "⏳ " + p.Message

	case protocol.MsgRoundCompleted:
		var p protocol.RoundCompletedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.roundNumber = p.RoundNumber
		m.scores = p.Scores
		m.statusLine = p.Message

	case protocol.MsgMatchCompleted:
		var p protocol.MatchCompletedPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.winnerName = p.WinnerName
		m.mysteryNumber = p.MysteryNumber
		m.scores = p.Scores
		m.gameNumber = p.GamesPlayed
		m.totalGames = p.TotalGames
		m.seriesOver = p.SeriesOver
		m.statusLine = ""
		if p.SeriesOver {
			m.phase = PhaseSeriesOver
		} else {
			m.phase = PhaseMatchOver
		}
		m.input.Reset()

	case protocol.MsgPlayersReady:
		var p protocol.PlayersReadyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.readyPlayers = p.ReadyPlayers
		m.waiting = p.WaitingPlayers

	case protocol.MsgError:
		var p protocol.ErrorPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil
		}
		m.error = p.Message
		return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
			return ClearErrorMsg{}
		})
	}

	return nil
}

// removePlayer 从房间成员名单中移除一名玩家
func (m *OnlineModel) removePlayer(name string) {
	for i, p := range m.roomPlayers {
		if p == name {
			m.roomPlayers = append(m.roomPlayers[:i], m.roomPlayers[i+1:]...)
			return
		}
	}
}
