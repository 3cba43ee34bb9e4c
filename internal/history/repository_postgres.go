package history

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertHistoryQuery = `
		INSERT INTO history (account_id, kind, username, age, budget, interests, analysis, gifts, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	listHistoryQuery = `
		SELECT id, account_id, kind, username, age, budget, interests, analysis, gifts, created_at
		FROM history
		WHERE account_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(rec Record) (Record, error) {
	gifts := rec.Gifts
	if gifts == nil {
		gifts = json.RawMessage("null")
	}
	err := r.db.QueryRow(
		insertHistoryQuery,
		rec.AccountID, rec.Kind, rec.Username, rec.Age, rec.Budget,
		pq.Array(rec.Interests), rec.Analysis, []byte(gifts), rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresRepository) ListByAccount(accountID int, limit int, offset int) ([]Record, error) {
	rows, err := r.db.Query(listHistoryQuery, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var (
			rec       Record
			username  sql.NullString
			analysis  sql.NullString
			gifts     []byte
			createdAt sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.AccountID, &rec.Kind, &username, &rec.Age, &rec.Budget,
			pq.Array(&rec.Interests), &analysis, &gifts, &createdAt,
		); err != nil {
			continue
		}
		rec.Username = username.String
		rec.Analysis = analysis.String
		rec.CreatedAt = createdAt.String
		if len(gifts) > 0 && string(gifts) != "null" {
			rec.Gifts = json.RawMessage(gifts)
		}
		out = append(out, rec)
	}
	return out, nil
}
