//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"affiliate-ledger/internal/handler/dto/request"
	"affiliate-ledger/internal/pkg/cookie"
	"affiliate-ledger/tests/common/dbtest"
	"affiliate-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// AdminPassword matches the bcrypt hash baked into config.NewTestConfig.
const AdminPassword = "password"

func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Password: AdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, "Admin login failed: %s", w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, tokenCookie, "Access token cookie not found")
	require.NotEmpty(t, tokenCookie.Value, "Access token cookie is empty")
	return tokenCookie.Value
}

func LoginAffiliate(t *testing.T, router *gin.Engine, coupon string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Coupon: coupon}, "")
	require.Equal(t, http.StatusOK, w.Code, "Affiliate login failed: %s", w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, tokenCookie, "Access token cookie not found")
	require.NotEmpty(t, tokenCookie.Value, "Access token cookie is empty")
	return tokenCookie.Value
}

// CreateAndLoginAffiliate seeds the affiliate row and logs in with its coupon.
func CreateAndLoginAffiliate(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, coupon string) string {
	t.Helper()

	dbtest.CreateTestAffiliate(t, db, name, coupon)
	return LoginAffiliate(t, router, coupon)
}
