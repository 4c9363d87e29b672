// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi
// oluşturulup composition root'tan (main.go) içeri taşınır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Log      LogConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/patievi.db)
}

// SessionConfig, oturum ayarları.
type SessionConfig struct {
	TTL time.Duration // Yeni oturumların yaşam süresi (varsayılan: 24 saat)

	// ChaosSignOut açıkken sign-out %10 ihtimalle 402 döner.
	// Client'ların hata toleransını denemek için; varsayılan kapalı.
	ChaosSignOut bool
}

// LogConfig, log dosyası ayarları.
type LogConfig struct {
	Dir string // out.log ve err.log'un yazılacağı dizin
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler — dosya yoksa sessizce devam eder,
// production'da gerçek env variable'lar kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	ttlHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}
	if ttlHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	chaos, err := strconv.ParseBool(getEnv("AUTH_CHAOS_SIGNOUT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CHAOS_SIGNOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/patievi.db"),
		},
		Session: SessionConfig{
			TTL:          time.Duration(ttlHours) * time.Hour,
			ChaosSignOut: chaos,
		},
		Log: LogConfig{
			Dir: getEnv("LOG_DIR", "."),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
