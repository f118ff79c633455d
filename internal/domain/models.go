package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is owned by the directory. Point is guarded by the customer's own
// lock so payments for different customers never contend.
type Customer struct {
	ID           int64     `db:"id"`
	CardNumber   string    `db:"card_number"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`

	mu    sync.Mutex
	point int64
}

func NewCustomer(id int64) *Customer {
	return &Customer{ID: id}
}

// RestoreCustomer rebuilds a customer loaded from storage with its balance.
func RestoreCustomer(id int64, cardNumber, passwordHash string, point int64, createdAt time.Time) *Customer {
	return &Customer{
		ID:           id,
		CardNumber:   cardNumber,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		point:        point,
	}
}

func (c *Customer) Point() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.point
}

// AddPoint credits p points and returns the new balance.
func (c *Customer) AddPoint(p int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.point += p
	return c.point
}

type Receipt struct {
	Amount    int64
	PointRate decimal.Decimal
	Point     int64
}

// ReceiptRecord is a receipt as it is kept in storage.
type ReceiptRecord struct {
	ID         uuid.UUID       `db:"id"`
	CustomerID int64           `db:"customer_id"`
	Amount     int64           `db:"amount"`
	PointRate  decimal.Decimal `db:"point_rate"`
	Point      int64           `db:"point"`
	PaidAt     time.Time       `db:"paid_at"`
}

func (r ReceiptRecord) Receipt() Receipt {
	return Receipt{
		Amount:    r.Amount,
		PointRate: r.PointRate,
		Point:     r.Point,
	}
}
