package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir 切换工作目录，避免读取仓库内的 config.yaml / .env
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("期望端口 8080，实际 %d", cfg.Server.Port)
	}
	want := []string{"Anmol Sharma", "Bala", "delcin", "Beulah Evanjalin"}
	if len(cfg.Roster.RoundRobinTAs) != len(want) {
		t.Fatalf("期望 %d 个轮转助教，实际 %v", len(want), cfg.Roster.RoundRobinTAs)
	}
	for i, name := range want {
		if cfg.Roster.RoundRobinTAs[i] != name {
			t.Errorf("第 %d 个助教期望 %s，实际 %s", i, name, cfg.Roster.RoundRobinTAs[i])
		}
	}
	if cfg.Roster.AbsentTA != "Saurabh" {
		t.Errorf("期望缺勤助教 Saurabh，实际 %s", cfg.Roster.AbsentTA)
	}
	if cfg.Auth.LoginRateWindow != time.Minute {
		t.Errorf("期望限流窗口 1m，实际 %s", cfg.Auth.LoginRateWindow)
	}
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
roster:
  round_robin_tas: ["A", "B"]
  absent_ta: "Nobody"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("ROSTER_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望端口 9090，实际 %d", cfg.Server.Port)
	}
	if len(cfg.Roster.RoundRobinTAs) != 2 {
		t.Errorf("期望 2 个轮转助教，实际 %v", cfg.Roster.RoundRobinTAs)
	}
	if cfg.Roster.AbsentTA != "Nobody" {
		t.Errorf("期望缺勤助教 Nobody，实际 %s", cfg.Roster.AbsentTA)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("期望日志级别 debug，实际 %s", cfg.Log.Level)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 0},
		Roster: RosterConfig{AbsentTA: "x", UnassignedTA: "y"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("端口为 0 时应校验失败")
	}
}

func TestValidate_EmptyAbsentTA(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Roster: RosterConfig{AbsentTA: "  ", UnassignedTA: "y"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("缺勤助教为空时应校验失败")
	}
}
