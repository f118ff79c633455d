package repo

import (
	"github.com/GlebRadaev/pointpay/internal/pg"
	customerrepo "github.com/GlebRadaev/pointpay/internal/repo/customer-repo"
	receiptrepo "github.com/GlebRadaev/pointpay/internal/repo/receipt-repo"
)

type Repositories struct {
	CustomerRepo *customerrepo.Repository
	ReceiptRepo  *receiptrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		CustomerRepo: customerrepo.New(conn),
		ReceiptRepo:  receiptrepo.New(conn, txManager),
	}
}
