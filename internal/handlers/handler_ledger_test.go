package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mzafran/zakat_tracker_app/internal/adapters/store/memory"
	"github.com/mzafran/zakat_tracker_app/internal/core/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/handlers"
	"github.com/mzafran/zakat_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *LedgerHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateformat", dto.ValidateDateFormat)
	}
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	container := services.NewServiceContainer(memory.NewRepositoryProvider())
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{Port: "8080"}, container)
}

func (suite *LedgerHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) TestAppendAndList() {
	w := suite.do(http.MethodPost, "/api/v1/ledger",
		`{"date":"2024-03-01","type":"Zakat","service":"Wise","recipient":"Local Mosque","amount":"100","fees":"2.5"}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created dto.PaymentEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(0, created.Position)
	suite.Equal("102.5", created.TotalPaid.String())
	suite.NotEmpty(created.EntryID)

	w = suite.do(http.MethodGet, "/api/v1/ledger", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var entries []dto.PaymentEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entries))
	suite.Require().Len(entries, 1)
	suite.Equal("Local Mosque", entries[0].Recipient)
}

func (suite *LedgerHandlerTestSuite) TestAppendRejectsBadDate() {
	w := suite.do(http.MethodPost, "/api/v1/ledger",
		`{"date":"03/01/2024","type":"Zakat","recipient":"Local Mosque","amount":"100"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAppendRejectsNegativeAmount() {
	w := suite.do(http.MethodPost, "/api/v1/ledger",
		`{"date":"2024-03-01","type":"Zakat","recipient":"Local Mosque","amount":"-5"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestSearch() {
	suite.do(http.MethodPost, "/api/v1/ledger",
		`{"date":"2024-03-01","type":"Zakat","recipient":"Local Mosque","amount":"100"}`)
	suite.do(http.MethodPost, "/api/v1/ledger",
		`{"date":"2024-03-02","type":"Sadaqah","recipient":"Family Member","amount":"20"}`)

	w := suite.do(http.MethodGet, "/api/v1/ledger/search?q=mosque", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var result dto.SearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(1, result.Count)
	suite.Equal([]int{0}, result.Positions)
}

func (suite *LedgerHandlerTestSuite) TestRunningTotalNotFound() {
	w := suite.do(http.MethodGet, "/api/v1/ledger/running-total/7", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
