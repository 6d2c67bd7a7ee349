package dto

// ── 登录模块 DTO ──

// LoginRequest 白名单登录请求
type LoginRequest struct {
	Gmail string `json:"gmail" binding:"required"`
}

// LoginResponse 登录成功响应（沿用前端约定：gmail 字段携带提示语）
type LoginResponse struct {
	Gmail string `json:"gmail"`
}

// LoginDeniedResponse 登录被拒响应
type LoginDeniedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
