package room

import "github.com/palemoky/hi-lo/internal/network/protocol"

// Audience 事件的投递范围。核心只决定载荷和范围，
// 具体投递由传输层完成
type Audience int

const (
	AudienceCaller     Audience = iota // 仅操作发起者
	AudienceRoom                       // 房间内所有成员
	AudienceRoomOthers                 // 房间内除发起者外的成员
	AudienceLobby                      // 除发起者外的所有在线连接（房间发现用）
)

// Event 一次操作派生出的广播事件
type Event struct {
	Type     protocol.MessageType
	Audience Audience
	Payload  any
}

// Summary 生成房间概要（大厅展示用）。调用方需持有房间读锁
func (r *Room) Summary() protocol.RoomSummary {
	return protocol.RoomSummary{
		RoomID:      r.ID,
		RoomName:    r.Name,
		PlayerCount: len(r.Members),
		MaxPlayers:  r.MaxPlayers,
		MinNumber:   r.Range.Min,
		MaxNumber:   r.Range.Max,
		TotalGames:  r.TotalGames,
		CreatedAt:   r.CreatedAt.Unix(),
	}
}

// scores 当前系列赛比分。调用方需持有房间锁
func (r *Room) scores() []protocol.PlayerScore {
	scores := make([]protocol.PlayerScore, 0, len(r.Members))
	for _, m := range r.Members {
		scores = append(scores, protocol.PlayerScore{Name: m.Player.Name, Wins: m.Wins})
	}
	return scores
}

// revealPlayers 赛后揭晓的逐玩家战况。调用方需持有房间锁
func (r *Room) revealPlayers() []protocol.MatchPlayerInfo {
	if r.Match == nil {
		return nil
	}
	infos := make([]protocol.MatchPlayerInfo, 0, len(r.Match.Players))
	for _, mp := range r.Match.Players {
		guesses := make([]protocol.GuessAttemptInfo, 0, len(mp.Guesses))
		for _, g := range mp.Guesses {
			guesses = append(guesses, protocol.GuessAttemptInfo{
				AttemptNumber: g.Attempt,
				Value:         g.Value,
				Result:        string(g.Outcome),
			})
		}
		infos = append(infos, protocol.MatchPlayerInfo{
			Name:     mp.Player.Name,
			Attempts: mp.Attempts,
			IsWinner: mp.IsWinner,
			Guesses:  guesses,
		})
	}
	return infos
}
