package receiptrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrCustomerMissing = errors.New("customer row missing")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	now       func() time.Time
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		now:       time.Now,
	}
}

// Save stores the receipt and credits its points to the customer in one
// transaction. The increment is done by the database so concurrent saves for
// the same customer add up.
func (r *Repository) Save(ctx context.Context, customerID int64, receipt domain.Receipt) (*domain.ReceiptRecord, error) {
	record := &domain.ReceiptRecord{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     receipt.Amount,
		PointRate:  receipt.PointRate,
		Point:      receipt.Point,
		PaidAt:     r.now().UTC(),
	}

	insertQuery := `
		INSERT INTO receipts (id, customer_id, amount, point_rate, point, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	creditQuery := `
		UPDATE customers
		SET point = point + $1
		WHERE id = $2
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, insertQuery, record.ID, record.CustomerID, record.Amount, record.PointRate.String(), record.Point, record.PaidAt)
		if err != nil {
			zap.L().Error("can't save receipt", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, creditQuery, record.Point, customerID)
		if err != nil {
			zap.L().Error("can't credit customer points", zap.Int64("customerID", customerID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrCustomerMissing, customerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.ReceiptRecord, error) {
	query := `
		SELECT id, customer_id, amount, point_rate::text, point, paid_at
		FROM receipts
		WHERE customer_id = $1
		ORDER BY paid_at DESC
	`
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get receipts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.ReceiptRecord
	for rows.Next() {
		var (
			record domain.ReceiptRecord
			rate   string
		)
		err := rows.Scan(&record.ID, &record.CustomerID, &record.Amount, &rate, &record.Point, &record.PaidAt)
		if err != nil {
			zap.L().Error("can't scan receipt row", zap.Error(err))
			return nil, err
		}
		if record.PointRate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("bad point rate %q: %w", rate, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("receipt rows failed", zap.Error(err))
		return nil, err
	}
	return records, nil
}
