package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	PublicBaseURL string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PayhereMerchant string
	PayhereSecret   string
	PayhereSandbox  bool

	AdminKey       string
	AdminJWTSecret string
}

// LoadConfig reads settings from the environment. Keys use dots in code
// and underscores in the environment, e.g. database.host -> DATABASE_HOST.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:          v.GetString("server.port"),
		PublicBaseURL: strings.TrimRight(v.GetString("server.public_base_url"), "/"),

		DBUser: v.GetString("database.user"),
		DBPass: v.GetString("database.password"),
		DBHost: v.GetString("database.host"),
		DBName: v.GetString("database.name"),

		RedisAddr:     v.GetString("redis.addr"),
		RedisPassword: v.GetString("redis.password"),
		RedisDB:       v.GetInt("redis.db"),

		PayhereMerchant: v.GetString("payhere.merchant_id"),
		PayhereSecret:   v.GetString("payhere.merchant_secret"),
		PayhereSandbox:  v.GetBool("payhere.sandbox"),

		AdminKey:       v.GetString("admin.key"),
		AdminJWTSecret: v.GetString("admin.jwt_secret"),
	}

	if cfg.DBUser == "" || cfg.DBHost == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("database configuration is incomplete")
	}
	return cfg, nil
}

// DSN builds the MySQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC", c.DBUser, c.DBPass, c.DBHost, c.DBName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.public_base_url", "http://localhost:8080")
	v.SetDefault("database.host", "127.0.0.1:3306")
	v.SetDefault("database.name", "flycargo")
	v.SetDefault("redis.db", 0)
	// PayHere credentials and admin secrets have no defaults: the payment
	// and admin surfaces stay disabled until they are configured.
	v.SetDefault("payhere.sandbox", true)
}
