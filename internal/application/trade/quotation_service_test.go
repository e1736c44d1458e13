package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appinventory "github.com/NgariMwangi/abz-sales-portal/internal/application/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

type quotationServiceFixture struct {
	service    *QuotationService
	quotations *MockQuotationRepository
	products   *MockProductRepository
}

func newQuotationServiceFixture() *quotationServiceFixture {
	f := &quotationServiceFixture{
		quotations: new(MockQuotationRepository),
		products:   new(MockProductRepository),
	}
	scope := &appinventory.NoOpTransactionScope{
		QuotationRepo: f.quotations,
		ProductRepo:   f.products,
	}
	f.service = NewQuotationService(scope, zap.NewNop())
	return f
}

func newSavedQuotation(t *testing.T) *trade.Quotation {
	t.Helper()
	item, err := trade.NewQuotationItem(uuid.Nil, nil, "Custom shelving", 2, dec("850"), "")
	require.NoError(t, err)
	q, err := trade.NewQuotation(uuid.New(), uuid.New(), "Jane Wambui", "", "", []trade.QuotationItem{*item})
	require.NoError(t, err)
	q.QuotationNumber = "QT-123456"
	return q
}

func TestQuotationServiceCreateQuotation(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog item defaults to selling price", func(t *testing.T) {
		f := newQuotationServiceFixture()
		product := newCatalogProduct("Angle Grinder", "GRN-010", "4500")

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.quotations.On("GenerateNumber", ctx).Return("QT-654321", nil)
		f.quotations.On("Save", ctx, mock.MatchedBy(func(q *trade.Quotation) bool {
			return q.QuotationNumber == "QT-654321" && q.TotalAmount.Equal(dec("9000"))
		})).Return(nil)

		resp, err := f.service.CreateQuotation(ctx, CreateQuotationRequest{
			UserID:       uuid.New(),
			BranchID:     uuid.New(),
			CustomerName: "Jane Wambui",
			Items:        []QuotationItemInput{{ProductID: &product.ID, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, "QT-654321", resp.QuotationNumber)
		assert.Equal(t, "9000", resp.TotalAmount.String())
		f.quotations.AssertExpectations(t)
	})

	t.Run("re-mints the number when the first insert collides", func(t *testing.T) {
		f := newQuotationServiceFixture()

		f.quotations.On("GenerateNumber", ctx).Return("QT-111111", nil).Once()
		f.quotations.On("GenerateNumber", ctx).Return("QT-222222", nil).Once()
		f.quotations.On("Save", ctx, mock.AnythingOfType("*trade.Quotation")).Return(shared.ErrDuplicateNumber).Once()
		f.quotations.On("Save", ctx, mock.MatchedBy(func(q *trade.Quotation) bool {
			return q.QuotationNumber == "QT-222222"
		})).Return(nil).Once()

		resp, err := f.service.CreateQuotation(ctx, CreateQuotationRequest{
			UserID:       uuid.New(),
			BranchID:     uuid.New(),
			CustomerName: "Jane Wambui",
			Items:        []QuotationItemInput{{ProductName: "Custom shelving", Quantity: 1, UnitPrice: decPtr("850")}},
		})
		require.NoError(t, err)
		assert.Equal(t, "QT-222222", resp.QuotationNumber)
		f.quotations.AssertExpectations(t)
	})

	t.Run("manual item requires a unit price", func(t *testing.T) {
		f := newQuotationServiceFixture()

		_, err := f.service.CreateQuotation(ctx, CreateQuotationRequest{
			UserID:       uuid.New(),
			BranchID:     uuid.New(),
			CustomerName: "Jane Wambui",
			Items:        []QuotationItemInput{{ProductName: "Custom shelving", Quantity: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, "INVALID_PRICE", shared.CodeOf(err))
		f.quotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("catalog item without selling price fails", func(t *testing.T) {
		f := newQuotationServiceFixture()
		product := newCatalogProduct("Mystery Part", "MYS-001", "")

		f.products.On("FindByID", ctx, product.ID).Return(product, nil)
		f.quotations.On("GenerateNumber", ctx).Return("QT-000001", nil).Maybe()

		_, err := f.service.CreateQuotation(ctx, CreateQuotationRequest{
			UserID:       uuid.New(),
			BranchID:     uuid.New(),
			CustomerName: "Jane Wambui",
			Items:        []QuotationItemInput{{ProductID: &product.ID, Quantity: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, "INVALID_PRICE", shared.CodeOf(err))
	})
}

func TestQuotationServiceEditQuotation(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces items while pending", func(t *testing.T) {
		f := newQuotationServiceFixture()
		q := newSavedQuotation(t)

		f.quotations.On("FindByID", ctx, q.ID).Return(q, nil)
		f.quotations.On("Save", ctx, q).Return(nil)

		resp, err := f.service.EditQuotation(ctx, EditQuotationRequest{
			QuotationID: q.ID,
			Items:       []QuotationItemInput{{ProductName: "Timber offcuts", Quantity: 4, UnitPrice: decPtr("250")}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1000", resp.TotalAmount.String())
	})

	t.Run("rejects edits after acceptance", func(t *testing.T) {
		f := newQuotationServiceFixture()
		q := newSavedQuotation(t)
		require.NoError(t, q.UpdateStatus(trade.QuotationStatusAccepted))

		f.quotations.On("FindByID", ctx, q.ID).Return(q, nil)

		_, err := f.service.EditQuotation(ctx, EditQuotationRequest{
			QuotationID: q.ID,
			Items:       []QuotationItemInput{{ProductName: "Timber offcuts", Quantity: 1, UnitPrice: decPtr("250")}},
		})
		require.Error(t, err)
		assert.Equal(t, "INVALID_STATE", shared.CodeOf(err))
	})
}

func TestQuotationServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a pending quotation", func(t *testing.T) {
		f := newQuotationServiceFixture()
		q := newSavedQuotation(t)

		f.quotations.On("FindByID", ctx, q.ID).Return(q, nil)
		f.quotations.On("Save", ctx, q).Return(nil)

		resp, err := f.service.UpdateStatus(ctx, UpdateQuotationStatusRequest{
			QuotationID: q.ID,
			Status:      "accepted",
		})
		require.NoError(t, err)
		assert.Equal(t, "accepted", resp.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		f := newQuotationServiceFixture()
		q := newSavedQuotation(t)

		f.quotations.On("FindByID", ctx, q.ID).Return(q, nil)

		_, err := f.service.UpdateStatus(ctx, UpdateQuotationStatusRequest{
			QuotationID: q.ID,
			Status:      "draft",
		})
		require.Error(t, err)
	})
}

func TestQuotationServiceDeleteQuotation(t *testing.T) {
	ctx := context.Background()
	f := newQuotationServiceFixture()
	q := newSavedQuotation(t)

	f.quotations.On("FindByID", ctx, q.ID).Return(q, nil)
	f.quotations.On("Delete", ctx, q.ID).Return(nil)

	require.NoError(t, f.service.DeleteQuotation(ctx, q.ID))
	f.quotations.AssertExpectations(t)
}
