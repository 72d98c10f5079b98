package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "affiliate-ledger/internal/handler/dto/request"
	resdto "affiliate-ledger/internal/handler/dto/response"
	"affiliate-ledger/internal/handler/httperr"
	"affiliate-ledger/internal/pkg/config"
	"affiliate-ledger/internal/pkg/cookie"
	"affiliate-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, cookieCfg: cookieCfg}
}

// @Summary Login
// @Description Authenticate as admin (password) or affiliate (coupon code)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, time.Duration(result.ExpiresIn)*time.Second)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
