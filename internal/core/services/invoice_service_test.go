package services_test

import (
	"context"
	"testing"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoices  *MockInvoiceRepository
	mockCostCodes *MockCostCodeRepository
	mockProjects  *MockProjectRepository
	mockCompany   *MockCompanyRepository
	service       portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoices = new(MockInvoiceRepository)
	suite.mockCostCodes = new(MockCostCodeRepository)
	suite.mockProjects = new(MockProjectRepository)
	suite.mockCompany = new(MockCompanyRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoices, suite.mockCostCodes, suite.mockProjects, suite.mockCompany)
}

func (suite *InvoiceServiceTestSuite) directory() []domain.Invoice {
	return []domain.Invoice{
		{InvoiceID: "inv-2", InvoiceNumber: "INV-1001", InvoiceName: "Kitchen refit"},
		{InvoiceID: "inv-1", InvoiceNumber: "INV-1000", InvoiceName: "Office remodel"},
	}
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_InsertionOrderPreserved() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return(suite.directory(), nil).Once()

	listed, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal("inv-2", listed[0].InvoiceID)
	suite.Equal("inv-1", listed[1].InvoiceID)
}

func (suite *InvoiceServiceTestSuite) TestSearchInvoices_MatchesNumberOrName() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return(suite.directory(), nil)

	byNumber, err := suite.service.SearchInvoices(ctx, "1000")
	suite.Require().NoError(err)
	suite.Require().Len(byNumber, 1)
	suite.Equal("inv-1", byNumber[0].InvoiceID)

	byName, err := suite.service.SearchInvoices(ctx, "KITCHEN")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal("inv-2", byName[0].InvoiceID)
}

func (suite *InvoiceServiceTestSuite) TestSearchInvoices_EmptyQueryReturnsAll() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return(suite.directory(), nil)

	all, err := suite.service.SearchInvoices(ctx, "   ")

	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *InvoiceServiceTestSuite) TestSearchInvoices_NoMatch() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return(suite.directory(), nil)

	none, err := suite.service.SearchInvoices(ctx, "warehouse")

	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return(suite.directory(), nil).Once()
	suite.mockInvoices.On("SaveInvoices", ctx, mock.MatchedBy(func(invoices []domain.Invoice) bool {
		return len(invoices) == 1 && invoices[0].InvoiceID == "inv-2"
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteInvoice(ctx, "inv-1"))
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_DeniedLeavesDirectoryUntouched() {
	ctx := context.Background()
	denier := new(MockConfirmer)
	denier.On("Confirm", ctx, mock.Anything).Return(false).Once()
	service := services.NewInvoiceService(
		suite.mockInvoices, suite.mockCostCodes, suite.mockProjects, suite.mockCompany,
		services.WithInvoiceConfirmer(denier),
	)

	suite.NoError(service.DeleteInvoice(ctx, "inv-1"))
	suite.mockInvoices.AssertNotCalled(suite.T(), "SaveInvoices", mock.Anything, mock.Anything)
	denier.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return([]domain.Invoice{}, nil).Once()

	suite.ErrorIs(suite.service.DeleteInvoice(ctx, "nope"), apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestTotalOf_RecomputesFromLines() {
	invoice := domain.Invoice{
		Macros: []domain.MacroLine{
			{
				MacroLineID: "m1",
				Items: []domain.LineItem{
					{LineItemID: "i1", Qty: "25", UnitPrice: "5"},
					{LineItemID: "i2", Qty: "2", UnitPrice: "5"},
				},
			},
		},
	}

	suite.Equal("135", suite.service.TotalOf(invoice).String())
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoice() {
	ctx := context.Background()
	invoice := domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-1000",
		InvoiceName:   "Office remodel",
		ProjectID:     "p1",
		Macros: []domain.MacroLine{
			{
				MacroLineID: "m1",
				CostCodeID:  "cc-1",
				Items:       []domain.LineItem{{LineItemID: "i1", Name: "Gypsum Board", Qty: "25", UnitPrice: "5"}},
			},
		},
	}
	suite.mockInvoices.On("FindInvoices", ctx).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockCostCodes.On("FindCostCodes", ctx).Return([]domain.CostCode{
		{CostCodeID: "cc-1", Code: "09 29 00", Title: "Gypsum Board"},
	}, nil).Once()
	suite.mockProjects.On("FindProjects", ctx).Return([]domain.Project{
		{ProjectID: "p1", Name: "Main St Office"},
	}, nil).Once()
	suite.mockCompany.On("FindCompany", ctx).Return(nil, nil).Once()

	html, err := suite.service.RenderInvoice(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.Contains(string(html), "INV-1000")
	suite.Contains(string(html), "Main St Office")
	suite.Contains(string(html), "09 29 00 — Gypsum Board")
	suite.Contains(string(html), "$125.00")
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoice_DanglingReferences() {
	ctx := context.Background()
	invoice := domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-1000",
		ProjectID:     "p-gone",
		Macros: []domain.MacroLine{
			{MacroLineID: "m1", CostCodeID: "cc-gone", Items: []domain.LineItem{{LineItemID: "i1", Qty: "1", UnitPrice: "1"}}},
		},
	}
	suite.mockInvoices.On("FindInvoices", ctx).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockCostCodes.On("FindCostCodes", ctx).Return([]domain.CostCode{}, nil).Once()
	suite.mockProjects.On("FindProjects", ctx).Return([]domain.Project{}, nil).Once()
	suite.mockCompany.On("FindCompany", ctx).Return(nil, nil).Once()

	html, err := suite.service.RenderInvoice(ctx, "inv-1")

	suite.Require().NoError(err)
	// The raw project id and the fallback section label keep the page
	// printable.
	suite.Contains(string(html), "p-gone")
	suite.Contains(string(html), "—")
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoice_NotFound() {
	ctx := context.Background()
	suite.mockInvoices.On("FindInvoices", ctx).Return([]domain.Invoice{}, nil).Once()

	_, err := suite.service.RenderInvoice(ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
