package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/core/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/costbook/costbook_app/internal/handlers"
	"github.com/costbook/costbook_app/internal/repositories/kv"
	"github.com/costbook/costbook_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// The handler suites run the full stack over the in-memory store, so they
// exercise routing, binding and the error mapping in one pass.
type CostCodeHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	container *portssvc.ServiceContainer
}

func (suite *CostCodeHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidations())
}

func (suite *CostCodeHandlerTestSuite) SetupTest() {
	repos := kv.NewRepositoryProvider(kv.NewMemoryStore())
	suite.container = services.NewServiceContainer(&repos)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, suite.container)
}

func (suite *CostCodeHandlerTestSuite) postCostCode(code, title string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dto.CreateCostCodeRequest{Code: code, Title: title})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cost-codes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CostCodeHandlerTestSuite) TestCreateAndList() {
	w := suite.postCostCode("09 29 00", "Gypsum Board")
	suite.Equal(http.StatusCreated, w.Code)

	var created dto.CostCodeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.NotEmpty(created.ID)

	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cost-codes", nil))
	suite.Equal(http.StatusOK, w.Code)

	var listed []dto.CostCodeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Require().Len(listed, 1)
	suite.Equal("09 29 00", listed[0].Code)
}

func (suite *CostCodeHandlerTestSuite) TestCreateDuplicateConflicts() {
	suite.Equal(http.StatusCreated, suite.postCostCode("09 29 00", "Gypsum Board").Code)
	suite.Equal(http.StatusConflict, suite.postCostCode("09 29 00", "Other").Code)
}

func (suite *CostCodeHandlerTestSuite) TestCreateBlankCodeRejectedByBinding() {
	suite.Equal(http.StatusBadRequest, suite.postCostCode("   ", "Gypsum Board").Code)
}

func (suite *CostCodeHandlerTestSuite) TestUpdateMissingReturns404() {
	body, _ := json.Marshal(dto.UpdateCostCodeRequest{Code: "X", Title: "Y"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cost-codes/nope", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CostCodeHandlerTestSuite) TestDelete() {
	w := suite.postCostCode("09 29 00", "Gypsum Board")
	var created dto.CostCodeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/cost-codes/%s", created.ID), nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cost-codes", nil))
	var listed []dto.CostCodeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Empty(listed)
}

func TestCostCodeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CostCodeHandlerTestSuite))
}
