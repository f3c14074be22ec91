package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"hipphone/internal/service/catalog"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Pricing PricingConfig `toml:"pricing"`
	Session SessionConfig `toml:"session"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port           int      `toml:"port"`
	DevMode        bool     `toml:"dev_mode"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	DefaultFile string `toml:"default_file"` // 没有上传时使用的本地文件
	History     bool   `toml:"history"`      // 是否记录加载/报价历史（SQLite）
	HistoryDays int    `toml:"history_days"` // 历史保留天数，0 表示不清理
}

// PricingConfig 计算配置
type PricingConfig struct {
	TieBreak     string `toml:"tie_break"`     // max_subsidy / first_row
	DiscountStep int64  `toml:"discount_step"` // 门店折扣输入步长（원）
}

// SessionConfig 会话配置
type SessionConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:           8501,
			DevMode:        false,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Data: DataConfig{
			DataDir:     "data",
			DefaultFile: "subsidies_minimal.xlsx",
			History:     true,
			HistoryDays: 90,
		},
		Pricing: PricingConfig{
			TieBreak:     catalog.TieBreakMaxSubsidy,
			DiscountStep: 1000,
		},
		Session: SessionConfig{
			TTLMinutes: 120,
		},
	}
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if _, err := catalog.TieBreakerByName(c.Pricing.TieBreak); err != nil {
		return fmt.Errorf("invalid pricing.tie_break: %w", err)
	}
	if c.Pricing.DiscountStep <= 0 {
		return fmt.Errorf("invalid pricing.discount_step: %d", c.Pricing.DiscountStep)
	}
	return nil
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadConfigFrom 从指定路径加载配置；文件不存在时使用默认配置
func LoadConfigFrom(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	case err != nil:
		return nil, info, err
	default:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	applyEnv(config, &info)

	if err := config.Validate(); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// applyEnv 环境变量覆盖（.env 由 main 预先加载）
func applyEnv(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("HIPPHONE_DEFAULT_FILE"); v != "" {
		config.Data.DefaultFile = v
	}
	if v := os.Getenv("HIPPHONE_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("HIPPHONE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
	if v := os.Getenv("HIPPHONE_TIE_BREAK"); v != "" {
		config.Pricing.TieBreak = v
	}
}

// ResolveDataDir 数据目录：绝对路径原样使用，相对路径相对可执行文件目录
func ResolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// EnsureDataDir 确保数据目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := ResolveDataDir(config)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// ResolveDefaultFile 默认文件：绝对路径原样使用；相对路径先按工作目录查找，找不到再放到数据目录下
func ResolveDefaultFile(config *AppConfig) string {
	name := config.Data.DefaultFile
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(ResolveDataDir(config), name)
}
