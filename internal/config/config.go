package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	MongoURI      string
	MongoDatabase string

	// PresenceKeyScheme selects how connected-user nodes are keyed in
	// the realtime store: "email" (normalized address) or "uid".
	PresenceKeyScheme string

	BrevoHost string
	BrevoPort int
	BrevoUser string
	BrevoPass string

	MailFrom string
	MailTo   string
}

func Load() Config {

	// Local development reads a .env file; deployed environments inject
	// real variables, so a missing file is not an error.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getenv("MONGO_DATABASE", "fulltv"),

		PresenceKeyScheme: getenv("PRESENCE_KEY_SCHEME", "uid"),

		BrevoHost: os.Getenv("BREVO_HOST"),
		BrevoPort: getenvInt("BREVO_PORT", 587),
		BrevoUser: os.Getenv("BREVO_USER"),
		BrevoPass: os.Getenv("BREVO_PASS"),

		MailFrom: os.Getenv("MAIL_FROM"),
		MailTo:   os.Getenv("MAIL_TO"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
