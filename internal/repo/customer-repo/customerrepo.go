package customerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const selectCustomer = `
	SELECT id, card_number, password_hash, point, created_at
	FROM customers
`

func (repo *Repository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := repo.scanOne(repo.db.QueryRow(ctx, selectCustomer+"WHERE id = $1", id))
	if err != nil {
		zap.L().Error("can't find customer", zap.Int64("customerID", id), zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (repo *Repository) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.Customer, error) {
	customer, err := repo.scanOne(repo.db.QueryRow(ctx, selectCustomer+"WHERE card_number = $1", cardNumber))
	if err != nil {
		zap.L().Error("can't find customer by card", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (repo *Repository) scanOne(row pgx.Row) (*domain.Customer, error) {
	var (
		id           int64
		cardNumber   string
		passwordHash string
		point        int64
		createdAt    time.Time
	)
	err := row.Scan(&id, &cardNumber, &passwordHash, &point, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return domain.RestoreCustomer(id, cardNumber, passwordHash, point, createdAt), nil
}

// Create inserts a customer with a zero balance and fills in ID and CreatedAt.
func (repo *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (card_number, password_hash, point)
		VALUES ($1, $2, 0)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, customer.CardNumber, customer.PasswordHash).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		zap.L().Error("can't save customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}
