package config

// AppConfig — настройки самого сервиса поверх конфигурации БД.
type AppConfig struct {
	// Адрес HTTP-сервера.
	HTTPAddr string

	// Интервал пересчёта снапшота рейтингов, минут. Выдача поиска
	// может отставать от свежих отзывов максимум на этот интервал.
	RatingRefreshMin int
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		RatingRefreshMin: getEnvInt("RATING_REFRESH_MIN", 5),
	}
}
