package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Security SecurityConfig `yaml:"security"`
	Game     GameConfig     `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string          `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig   `yaml:"rate_limit"`
	MessageLimit   MessageRateConfig `yaml:"message_limit"`
}

// RateLimitConfig 连接级速率限制
type RateLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	BanDuration  int `yaml:"ban_duration"` // 封禁时长（分钟）
}

// BanDurationTime 返回封禁时长
func (c *RateLimitConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Minute
}

// MessageRateConfig 消息级速率限制
type MessageRateConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// GameConfig 游戏配置
type GameConfig struct {
	DefaultRows    int `yaml:"default_rows"`    // 地图缺省行数
	DefaultColumns int `yaml:"default_columns"` // 地图缺省列数
	TopRoomsLimit  int `yaml:"top_rooms_limit"` // 积分榜默认条数
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 填充默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1780
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = 1024
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.RateLimit.MaxPerSecond == 0 {
		c.Security.RateLimit.MaxPerSecond = 5
	}
	if c.Security.RateLimit.MaxPerMinute == 0 {
		c.Security.RateLimit.MaxPerMinute = 60
	}
	if c.Security.RateLimit.BanDuration == 0 {
		c.Security.RateLimit.BanDuration = 10
	}
	if c.Security.MessageLimit.MaxPerSecond == 0 {
		// selectTile 是高频热路径，上限要留得宽
		c.Security.MessageLimit.MaxPerSecond = 60
	}
	if c.Game.DefaultRows == 0 {
		c.Game.DefaultRows = 8
	}
	if c.Game.DefaultColumns == 0 {
		c.Game.DefaultColumns = 8
	}
	if c.Game.TopRoomsLimit == 0 {
		c.Game.TopRoomsLimit = 10
	}
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
