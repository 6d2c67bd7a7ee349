package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/dto"
)

var ErrAccessDenied = errors.New("access denied")

// AuthService 助教白名单登录
// 仅做邮箱白名单匹配，不签发凭证
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	allowed map[string]struct{}
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例；白名单比较忽略大小写与首尾空白
func NewAuthService(allowedEmails []string, logger *zap.Logger) AuthService {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		if e = normalizeEmail(e); e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &authService{allowed: allowed, logger: logger}
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if _, ok := s.allowed[normalizeEmail(req.Gmail)]; !ok {
		s.logger.Warn("白名单登录被拒", zap.String("gmail", req.Gmail))
		return nil, ErrAccessDenied
	}
	return &dto.LoginResponse{Gmail: "Access granted for: " + req.Gmail}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
