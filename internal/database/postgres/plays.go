package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
)

// PlayRepository implements repository.Play for PostgreSQL
type PlayRepository struct {
	db *pgxpool.Pool
}

// NewPlayRepository creates a new PlayRepository
func NewPlayRepository(db *pgxpool.Pool) *PlayRepository {
	return &PlayRepository{db: db}
}

// GetPlay loads one settled play. Identifiers that are not UUIDs cannot
// exist and are reported as not found.
func (r *PlayRepository) GetPlay(ctx context.Context, playID string) (*domain.PlayRecord, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, domain.ErrPlayNotFound
	}

	rec, err := scanPlay(r.db.QueryRow(ctx, sqlGetPlay, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlay, err)
	}
	return rec, nil
}

// ListPlays returns plays matching filter, newest first
func (r *PlayRepository) ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error) {
	query := sq.Select(playColumns...).
		From(tablePlays).
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at DESC", "play_id")

	if filter.PlayerID != "" {
		query = query.Where(sq.Eq{"player_id": filter.PlayerID})
	}
	if filter.VenueID != "" {
		query = query.Where(sq.Eq{"venue_id": filter.VenueID})
	}
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"created_at": *filter.To})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlays, err)
	}
	defer rows.Close()

	plays := make([]domain.PlayRecord, 0)
	for rows.Next() {
		rec, err := scanPlay(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlays, err)
		}
		plays = append(plays, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlays, err)
	}
	return plays, nil
}

// scanPlay reads one row in playColumns order
func scanPlay(row pgx.Row) (*domain.PlayRecord, error) {
	var (
		rec   domain.PlayRecord
		id    uuid.UUID
		class string
		line  pgtype.Text
		grid  []byte
	)
	err := row.Scan(
		&id,
		&rec.PlayerID,
		&rec.VenueID,
		&rec.GameMode,
		&rec.BetAmount,
		&rec.PayoutAmount,
		&class,
		&line,
		&grid,
		&rec.BalanceBefore,
		&rec.BalanceAfter,
		&rec.Signature,
		&rec.PlayDate,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.PlayID = id.String()
	rec.PayoutClass = domain.PayoutClass(class)
	if line.Valid {
		wl := domain.WinLine(line.String)
		rec.WinningLine = &wl
	}
	if err := json.Unmarshal(grid, &rec.OutcomeGrid); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalGrid, err)
	}
	return &rec, nil
}
