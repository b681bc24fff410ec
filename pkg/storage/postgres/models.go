package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"settleup/pkg/domain"
	"settleup/pkg/settlement"
	"time"

	"github.com/google/uuid"
)

type PgSession struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name          string    `db:"name"`
	PlayedAt      time.Time `db:"played_at"`
	IsSettled     bool      `db:"is_settled"`
	SettleVersion int64     `db:"settle_version" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() *domain.Session {
	return &domain.Session{
		ID:        domain.SessionID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Name:      p.Name,
		Date:      p.PlayedAt,
		IsSettled:     p.IsSettled,
		SettleVersion: p.SettleVersion,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgSession) FromDomain(session domain.Session) {
	*p = PgSession{
		ID:        uuid.UUID(session.ID),
		UserID:    uuid.UUID(session.UserID),
		Name:      session.Name,
		PlayedAt:  session.Date,
		IsSettled:     session.IsSettled,
		SettleVersion: session.SettleVersion,
		CreatedAt:     session.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  session.UpdatedAt,
			Valid: !session.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  session.DeletedAt,
			Valid: !session.DeletedAt.IsZero(),
		},
	}
}

type PgPlayer struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SessionID uuid.UUID `db:"session_id"`
	Position  int64     `db:"position"   goqu:"skipinsert"`

	Name     string `db:"name"`
	TotalIn  int64  `db:"total_in"`
	TotalOut int64  `db:"total_out"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPlayer) ToDomain() domain.Player {
	return domain.Player{
		ID:        domain.PlayerID(p.ID),
		SessionID: domain.SessionID(p.SessionID),
		Name:      p.Name,
		TotalIn:   p.TotalIn,
		TotalOut:  p.TotalOut,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgPlayer) FromDomain(player domain.Player) {
	*p = PgPlayer{
		ID:        uuid.UUID(player.ID),
		SessionID: uuid.UUID(player.SessionID),
		Position:  player.Position,
		Name:      player.Name,
		TotalIn:   player.TotalIn,
		TotalOut:  player.TotalOut,
		CreatedAt: player.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  player.UpdatedAt,
			Valid: !player.UpdatedAt.IsZero(),
		},
	}
}

type PgSettlement struct {
	SessionID     uuid.UUID `db:"session_id"`
	SettleVersion int64     `db:"settle_version"`
	Transfers     string    `db:"transfers"`
	CreatedAt     time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSettlement) ToDomain() (*domain.Settlement, error) {
	transfers := []settlement.Transfer{}
	if err := json.Unmarshal([]byte(p.Transfers), &transfers); err != nil {
		return nil, fmt.Errorf("could not unmarshal settlement transfers: %w", err)
	}

	return &domain.Settlement{
		SessionID:     domain.SessionID(p.SessionID),
		SettleVersion: p.SettleVersion,
		Transfers:     transfers,
		CreatedAt:     p.CreatedAt,
	}, nil
}

func (p *PgSettlement) FromDomain(s domain.Settlement) error {
	transfers := s.Transfers
	if transfers == nil {
		transfers = []settlement.Transfer{}
	}

	raw, err := json.Marshal(transfers)
	if err != nil {
		return fmt.Errorf("could not marshal settlement transfers: %w", err)
	}

	*p = PgSettlement{
		SessionID:     uuid.UUID(s.SessionID),
		SettleVersion: s.SettleVersion,
		Transfers:     string(raw),
		CreatedAt:     s.CreatedAt,
	}

	return nil
}

func domainPlayersToPg(players []domain.Player) []PgPlayer {
	out := make([]PgPlayer, len(players))
	for i := range out {
		out[i].FromDomain(players[i])
	}

	return out
}

func pgPlayersToDomain(players []PgPlayer) []domain.Player {
	out := make([]domain.Player, 0, len(players))
	for _, player := range players {
		out = append(out, player.ToDomain())
	}

	return out
}
