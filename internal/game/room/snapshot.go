package room

import "github.com/palemoky/hi-lo/internal/game"

// Snapshot 房间的可序列化快照（Redis 镜像用）。
// 快照只用于观测和恢复展示，内存中的 Room 才是权威状态
type Snapshot struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MinNumber    int              `json:"min_number"`
	MaxNumber    int              `json:"max_number"`
	Members      []MemberSnapshot `json:"members"`
	Match        *MatchSnapshot   `json:"match,omitempty"`
	CreatedAt    int64            `json:"created_at"`
	Started      bool             `json:"started"`
	Completed    bool             `json:"completed"`
	CurrentRound int              `json:"current_round"`
	TotalGames   int              `json:"total_games"`
	GamesPlayed  int              `json:"games_played"`
}

// MemberSnapshot 成员快照
type MemberSnapshot struct {
	Name             string `json:"name"`
	ConnID           string `json:"conn_id,omitempty"`
	HasGuessed       bool   `json:"has_guessed"`
	ReadyForNextGame bool   `json:"ready_for_next_game"`
	Wins             int    `json:"wins"`
	JoinedAt         int64  `json:"joined_at"`
}

// MatchSnapshot 比赛快照。神秘数字也会入库：
// 快照只写给服务端自己的 Redis，不会发给客户端
type MatchSnapshot struct {
	ID            string                `json:"id"`
	MysteryNumber int                   `json:"mystery_number"`
	Completed     bool                  `json:"completed"`
	StartedAt     int64                 `json:"started_at"`
	CompletedAt   int64                 `json:"completed_at,omitempty"`
	Players       []MatchPlayerSnapshot `json:"players"`
}

// MatchPlayerSnapshot 比赛中单个玩家的快照
type MatchPlayerSnapshot struct {
	Name     string             `json:"name"`
	Attempts int                `json:"attempts"`
	IsWinner bool               `json:"is_winner"`
	Guesses  []game.GuessRecord `json:"guesses,omitempty"`
}

// Snapshot 在读锁内生成快照
func (r *Room) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		ID:           r.ID,
		Name:         r.Name,
		MinNumber:    r.Range.Min,
		MaxNumber:    r.Range.Max,
		CreatedAt:    r.CreatedAt.Unix(),
		Started:      r.Started,
		Completed:    r.Completed,
		CurrentRound: r.CurrentRound,
		TotalGames:   r.TotalGames,
		GamesPlayed:  r.GamesPlayed,
	}

	for _, m := range r.Members {
		snap.Members = append(snap.Members, MemberSnapshot{
			Name:             m.Player.Name,
			ConnID:           m.ConnID,
			HasGuessed:       m.HasGuessed,
			ReadyForNextGame: m.ReadyForNextGame,
			Wins:             m.Wins,
			JoinedAt:         m.JoinedAt.Unix(),
		})
	}

	if r.Match != nil {
		ms := &MatchSnapshot{
			ID:            r.Match.ID,
			MysteryNumber: r.Match.MysteryNumber,
			Completed:     r.Match.Completed,
			StartedAt:     r.Match.StartedAt.Unix(),
		}
		if !r.Match.CompletedAt.IsZero() {
			ms.CompletedAt = r.Match.CompletedAt.Unix()
		}
		for _, mp := range r.Match.Players {
			ms.Players = append(ms.Players, MatchPlayerSnapshot{
				Name:     mp.Player.Name,
				Attempts: mp.Attempts,
				IsWinner: mp.IsWinner,
				Guesses:  mp.Guesses,
			})
		}
		snap.Match = ms
	}

	return snap
}
