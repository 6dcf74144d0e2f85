package config

import (
	"os"
	"strings"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	AllowedOrigins []string

	// Mail transport
	MailProvider   string // smtp, resend or sendgrid
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	ResendAPIKey   string
	SendgridAPIKey string
	MailFrom       string
	MailFromName   string
	MailTimeout    string // seconds

	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	JWTExpiresIn  string // minutes
}

func Load() *Config {
	return &Config{
		Port:     getenv("PORT", "5000"),
		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "mibc"),
		AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS",
			"http://localhost:5500,http://127.0.0.1:5500,http://localhost:5000,http://localhost:5001,https://mexicoindia.org,https://www.mexicoindia.org")),

		MailProvider:   getenv("MAIL_PROVIDER", "resend"),
		SMTPHost:       getenv("SMTP_HOST", "localhost"),
		SMTPPort:       getenv("SMTP_PORT", "587"),
		SMTPUser:       getenv("SMTP_USER", ""),
		SMTPPassword:   getenv("SMTP_PASSWORD", ""),
		ResendAPIKey:   getenv("RESEND_API_KEY", ""),
		SendgridAPIKey: getenv("SENDGRID_API_KEY", ""),
		MailFrom:       getenv("MAIL_FROM", "onboarding@resend.dev"),
		MailFromName:   getenv("MAIL_FROM_NAME", "MIBC Team"),
		MailTimeout:    getenv("MAIL_TIMEOUT_SECONDS", "8"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@mexicoindia.org"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getenv("JWT_SECRET", "supersecret_change_me"),
		JWTExpiresIn:  getenv("JWT_EXPIRES_IN", "60"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
