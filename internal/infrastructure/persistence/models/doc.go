// Package models contains the GORM persistence models and their mappings
// to and from the domain entities. Domain types stay free of persistence
// tags; all schema concerns live here.
package models

// AllModels returns every persistence model for schema migration.
func AllModels() []any {
	return []any{
		&BranchModel{},
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&QuotationModel{},
		&QuotationItemModel{},
		&StockTransactionModel{},
		&PaymentModel{},
		&ReceiptModel{},
		&InvoiceModel{},
		&DocumentNumberModel{},
	}
}
