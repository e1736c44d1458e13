package inventory

import (
	"context"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/catalog"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

// TransactionScope provides transactional access to the store's repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within one
// transaction. Every repository returned shares the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Orders returns the order repository scoped to the current transaction
	Orders() trade.OrderRepository
	// Quotations returns the quotation repository scoped to the current transaction
	Quotations() trade.QuotationRepository
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Stock returns the stock counter mutator scoped to the current transaction
	Stock() inventory.StockRepository
	// StockTransactions returns the stock audit repository scoped to the current transaction
	StockTransactions() inventory.StockTransactionRepository
	// Payments returns the payment repository scoped to the current transaction
	Payments() finance.PaymentRepository
	// Receipts returns the receipt repository scoped to the current transaction
	Receipts() finance.ReceiptRepository
	// Invoices returns the invoice repository scoped to the current transaction
	Invoices() finance.InvoiceRepository
	// Numbers returns the document sequence repository scoped to the current transaction
	Numbers() finance.DocumentNumberRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	OrderRepo            trade.OrderRepository
	QuotationRepo        trade.QuotationRepository
	ProductRepo          catalog.ProductRepository
	StockRepo            inventory.StockRepository
	StockTransactionRepo inventory.StockTransactionRepository
	PaymentRepo          finance.PaymentRepository
	ReceiptRepo          finance.ReceiptRepository
	InvoiceRepo          finance.InvoiceRepository
	NumberRepo           finance.DocumentNumberRepository
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository.
func (s *NoOpTransactionScope) Orders() trade.OrderRepository { return s.OrderRepo }

// Quotations returns the quotation repository.
func (s *NoOpTransactionScope) Quotations() trade.QuotationRepository { return s.QuotationRepo }

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// Stock returns the stock counter mutator.
func (s *NoOpTransactionScope) Stock() inventory.StockRepository { return s.StockRepo }

// StockTransactions returns the stock audit repository.
func (s *NoOpTransactionScope) StockTransactions() inventory.StockTransactionRepository {
	return s.StockTransactionRepo
}

// Payments returns the payment repository.
func (s *NoOpTransactionScope) Payments() finance.PaymentRepository { return s.PaymentRepo }

// Receipts returns the receipt repository.
func (s *NoOpTransactionScope) Receipts() finance.ReceiptRepository { return s.ReceiptRepo }

// Invoices returns the invoice repository.
func (s *NoOpTransactionScope) Invoices() finance.InvoiceRepository { return s.InvoiceRepo }

// Numbers returns the document sequence repository.
func (s *NoOpTransactionScope) Numbers() finance.DocumentNumberRepository { return s.NumberRepo }

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
