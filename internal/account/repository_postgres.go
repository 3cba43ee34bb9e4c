package account

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getAccountByIDQuery = `
		SELECT account_id, email, password, first_name, last_name, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`
	getAccountByEmailQuery = `
		SELECT account_id, email, password, first_name, last_name, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	insertAccountQuery = `
		INSERT INTO accounts (email, password, first_name, last_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING account_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Account, error) {
	return r.scanOne(r.db.QueryRow(getAccountByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (Account, error) {
	return r.scanOne(r.db.QueryRow(getAccountByEmailQuery, email))
}

func (r *PostgresRepository) Create(a Account) (Account, error) {
	err := r.db.QueryRow(insertAccountQuery, a.Email, a.Password, a.FirstName, a.LastName, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		return Account{}, err
	}
	return a, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (Account, error) {
	var (
		a         Account
		firstName sql.NullString
		lastName  sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Email, &a.Password, &firstName, &lastName, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	a.FirstName = firstName.String
	a.LastName = lastName.String
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, nil
}
