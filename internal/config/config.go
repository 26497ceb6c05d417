package config

import "os"

// Config настройки бинарников, читаются из переменных окружения
type Config struct {
	Addr       string // адрес мок-бэкенда
	APIBaseURL string // базовый URL бэкенда для клиента витрины
	HistoryDir string // каталог файлового key-value хранилища
}

func Load() *Config {
	return &Config{
		Addr:       getEnv("KICKS_ADDR", ":3000"),
		APIBaseURL: getEnv("KICKS_API_URL", "http://localhost:3000"),
		HistoryDir: getEnv("KICKS_HISTORY_DIR", ".kicks"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
