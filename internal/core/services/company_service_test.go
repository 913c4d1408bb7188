package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/core/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)
}

func (suite *CompanyServiceTestSuite) request() dto.SaveCompanyRequest {
	return dto.SaveCompanyRequest{
		Name:    "Acme Builders",
		Email:   "office@acme.test",
		Phone:   "555-0100",
		Address: "1 Yard Rd",
	}
}

func (suite *CompanyServiceTestSuite) TestGetCompany_BeforeFirstSetup() {
	ctx := context.Background()
	suite.mockRepo.On("FindCompany", ctx).Return(nil, nil).Once()

	_, err := suite.service.GetCompany(ctx)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CompanyServiceTestSuite) TestSaveCompany_FirstSave() {
	ctx := context.Background()
	suite.mockRepo.On("FindCompany", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Acme Builders" && c.CompanyID != ""
	})).Return(nil).Once()

	saved, err := suite.service.SaveCompany(ctx, suite.request())

	suite.Require().NoError(err)
	suite.NotEmpty(saved.CompanyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestSaveCompany_ReplaceKeepsIdentity() {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	existing := &domain.Company{
		CompanyID: "co-1",
		Name:      "Old Name",
		AuditFields: domain.AuditFields{
			CreatedAt: created,
		},
	}
	suite.mockRepo.On("FindCompany", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.CompanyID == "co-1" && c.CreatedAt.Equal(created) && c.Name == "Acme Builders"
	})).Return(nil).Once()

	saved, err := suite.service.SaveCompany(ctx, suite.request())

	suite.Require().NoError(err)
	suite.Equal("co-1", saved.CompanyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
