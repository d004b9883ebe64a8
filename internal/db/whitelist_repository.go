package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/la2forge/internal/game/transmute"
)

// WhitelistRepository читает transmute whitelist из БД.
// Таблица правится оператором напрямую (без пересборки и рестарта —
// движок перечитывает её через Whitelist.Reload).
type WhitelistRepository struct {
	db *pgxpool.Pool
}

// NewWhitelistRepository создаёт новый WhitelistRepository.
func NewWhitelistRepository(db *pgxpool.Pool) *WhitelistRepository {
	return &WhitelistRepository{db: db}
}

// LoadRows возвращает все включённые строки whitelist.
// Реализует transmute.WhitelistSource.
func (r *WhitelistRepository) LoadRows(ctx context.Context) ([]transmute.WhitelistSourceRow, error) {
	query := `
		SELECT enchant_id, group_key, rank, min_item_level, weight,
		       can_apply_to_weapon, can_apply_to_armor
		FROM transmute_whitelist
		WHERE enabled
		ORDER BY enchant_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying transmute whitelist: %w", err)
	}
	defer rows.Close()

	out := make([]transmute.WhitelistSourceRow, 0, 64)
	for rows.Next() {
		var row transmute.WhitelistSourceRow
		if err := rows.Scan(
			&row.EnchantID, &row.GroupKey, &row.Rank, &row.MinItemLevel, &row.Weight,
			&row.Weapon, &row.Armor,
		); err != nil {
			return nil, fmt.Errorf("scanning whitelist row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating whitelist rows: %w", err)
	}

	return out, nil
}
