//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"affiliate-ledger/internal/handler/api"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"
	"affiliate-ledger/tests/common/httptest"
	commandsmock "affiliate-ledger/tests/mock/commands"
	queriesmock "affiliate-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WithdrawalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWithdrawalCommands
	mockQueries  *queriesmock.MockWithdrawalQueries
	handler      *api.WithdrawalHandler
}

func (s *WithdrawalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWithdrawalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWithdrawalQueries(s.mockCtrl)
	s.handler = api.NewWithdrawalHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/withdrawals", s.handler.List)
	s.router.POST("/withdrawals/:id/resolve", s.handler.Resolve)
}

func (s *WithdrawalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWithdrawalHandlerSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalHandlerTestSuite))
}

func (s *WithdrawalHandlerTestSuite) TestList() {
	s.Run("success: status filter is passed through", func() {
		status := "pending"
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.WithdrawalListFilter{Status: &status}).
			Return([]*queries.WithdrawalView{withdrawalView("pending")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/withdrawals?status=pending", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("pending", body[0]["status"])
	})
}

func (s *WithdrawalHandlerTestSuite) TestResolve() {
	id := uuid.New()
	url := "/withdrawals/" + id.String() + "/resolve"

	s.Run("success: approve returns the paid record", func() {
		view := withdrawalView("paid")
		resolvedAt := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
		view.ResolvedAt = &resolvedAt
		s.mockCommands.EXPECT().ResolveWithdrawal(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body["status"])
		s.NotNil(body["resolved_at"])
	})

	s.Run("error: 404 when request does not exist", func() {
		s.mockCommands.EXPECT().ResolveWithdrawal(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrWithdrawalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Withdrawal not found")
	})

	s.Run("error: 409 when already resolved", func() {
		s.mockCommands.EXPECT().ResolveWithdrawal(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "reject"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already resolved")
	})

	s.Run("error: 400 on unknown decision", func() {
		s.mockCommands.EXPECT().ResolveWithdrawal(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrWithdrawalValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "maybe"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when decision missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
