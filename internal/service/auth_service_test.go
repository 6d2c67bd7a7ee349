package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/internal/dto"
)

func TestAuthService_Login_Allowed(t *testing.T) {
	svc := NewAuthService([]string{"ta.one@gmail.com", "  TA.Two@Gmail.com "}, zap.NewNop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Gmail: "ta.one@gmail.com"})
	if err != nil {
		t.Fatalf("白名单邮箱应登录成功: %v", err)
	}
	if resp.Gmail != "Access granted for: ta.one@gmail.com" {
		t.Errorf("响应内容不符: %s", resp.Gmail)
	}

	// 忽略大小写与首尾空白
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Gmail: "ta.two@gmail.com "}); err != nil {
		t.Errorf("大小写不同的白名单邮箱应登录成功: %v", err)
	}
}

func TestAuthService_Login_Denied(t *testing.T) {
	svc := NewAuthService([]string{"ta.one@gmail.com"}, zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Gmail: "stranger@gmail.com"})
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("期望 ErrAccessDenied，实际: %v", err)
	}
}

func TestAuthService_Login_EmptyAllowlist(t *testing.T) {
	svc := NewAuthService(nil, zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Gmail: ""})
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("空白名单应拒绝所有登录，实际: %v", err)
	}
}
