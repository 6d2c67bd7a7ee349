package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vayras/ta-backend/internal/dto"
	"github.com/Vayras/ta-backend/internal/service"
	"github.com/Vayras/ta-backend/pkg/response"
)

// AuthHandler 登录模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 助教白名单登录
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			// 被拒响应沿用前端约定的结构
			c.JSON(http.StatusUnauthorized, dto.LoginDeniedResponse{
				Status:  "error",
				Message: "Access denied for: " + req.Gmail,
			})
			return
		}
		response.InternalError(c)
		return
	}

	response.JSON(c, result)
}
