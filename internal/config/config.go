package config

import (
	"os"
	"strings"
)

// Config carries every tunable the service reads from the environment.
// Secrets and identity (admin address, JWT secret, gateway keys) are
// configuration on purpose: nothing credentialed is hard-coded in handlers.

type Config struct {
	Port string

	// Site identity used in invoices and outbound links.
	StoreName    string
	StoreTagline string
	BaseURL      string
	SignInURL    string

	// Authorization.
	AdminEmail string
	JWTSecret  string

	// Outbound contact channels.
	ContactEmail  string
	WhatsAppPhone string

	// Payment gateway selection and provider credentials.
	PaymentProvider  string
	PayDunyaEndpoint string
	PayDunyaMaster   string
	PayDunyaPrivate  string
	PayDunyaToken    string
	MercadoPagoToken string

	// Storage backend: "file" (default) or "dynamodb".
	StorageBackend string
	StorageDir     string
	StorageTable   string

	// Exchange-rate source.
	RatesURL string

	// Optional order-event publishing.
	RabbitMQURL   string
	OrderExchange string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		StoreName:    getEnv("STORE_NAME", "LoveDK Tech"),
		StoreTagline: getEnv("STORE_TAGLINE", "Transforming Ideas into Digital Reality"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		SignInURL:    getEnv("SIGN_IN_URL", "/sign-in"),

		AdminEmail: getEnv("ADMIN_EMAIL", "followyaya@gmail.com"),
		JWTSecret:  getEnv("JWT_SECRET", ""),

		ContactEmail:  getEnv("CONTACT_EMAIL", "followyaya@gmail.com"),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "18652829928"),

		PaymentProvider:  strings.ToLower(getEnv("PAYMENT_PROVIDER", "paydunya")),
		PayDunyaEndpoint: getEnv("PAYDUNYA_ENDPOINT", "https://app.paydunya.com/api/v1/checkout-invoice"),
		PayDunyaMaster:   getEnv("PAYDUNYA_MASTER_KEY", ""),
		PayDunyaPrivate:  getEnv("PAYDUNYA_PRIVATE_KEY", ""),
		PayDunyaToken:    getEnv("PAYDUNYA_TOKEN", ""),
		MercadoPagoToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", "file")),
		StorageDir:     getEnv("STORAGE_DIR", "./data"),
		StorageTable:   getEnv("STORAGE_TABLE", "site_state"),

		RatesURL: getEnv("RATES_URL", "https://api.exchangerate-api.com/v4/latest/EUR"),

		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
		OrderExchange: getEnv("ORDER_EXCHANGE", "orders_exchange"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
