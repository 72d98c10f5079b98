//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"affiliate-ledger/internal/handler/api"
	"affiliate-ledger/internal/pkg/config"
	"affiliate-ledger/internal/pkg/cookie"
	"affiliate-ledger/internal/usecase"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/tests/common/httptest"
	commandsmock "affiliate-ledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("success: admin login sets the token cookie", func() {
		result := &commands.LoginResult{
			Token:     "signed-token",
			Role:      usecase.RoleAdmin,
			ExpiresIn: 3600,
		}
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"password": "password"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed-token", body["access_token"])
		s.Equal(usecase.RoleAdmin, body["role"])

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("signed-token", tokenCookie.Value)
	})

	s.Run("success: affiliate login carries the coupon", func() {
		result := &commands.LoginResult{
			Token:     "signed-token",
			Role:      usecase.RoleAffiliate,
			Coupon:    "ZEUS10",
			ExpiresIn: 3600,
		}
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"coupon": "zeus10"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ZEUS10", body["coupon"])
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"password": "wrong"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the token cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
		s.Negative(tokenCookie.MaxAge)
	})
}
