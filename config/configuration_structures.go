package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// JWTConfig : ключи подписи и сроки действия токенов.
// Для access и refresh токенов используются разные ключи
type JWTConfig struct {
	AccessSecretKey  string `yaml:"access_secret_key"`
	RefreshSecretKey string `yaml:"refresh_secret_key"`
	AccessTokenTTL   string `yaml:"access_token_ttl"`
	RefreshTokenTTL  string `yaml:"refresh_token_ttl"`
	Issuer           string `yaml:"issuer"`
}

// CookieConfig : политика cookie, в которой клиенту уходит refresh-токен
type CookieConfig struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Secure bool   `yaml:"secure"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WebhookConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// StorageConfig : выбор реализации хранилища refresh-токенов
type StorageConfig struct {
	// Backend : memory, redis или postgres
	Backend string `yaml:"backend"`
}

// SeedUser : пользователь из конфигурации.
// Пароль хэшируется при загрузке справочника
type SeedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// SeedModule : учебный модуль из конфигурации
type SeedModule struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
