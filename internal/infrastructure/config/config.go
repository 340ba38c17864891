package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the process settings read from the environment (.env is loaded by
// godotenv/autoload in main before Load runs).
type Config struct {
	Port     string
	LogLevel string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	LeadsTable         string
	PaymentsTable      string
	CategoriesTable    string

	FunctionsBaseURL string
	FunctionsAPIKey  string

	GenerationTimeout  time.Duration
	LeadFetchRetries   int
	LeadFetchBaseDelay time.Duration
	LeadFetchMaxDelay  time.Duration
	PollAttempts       int
	PollInterval       time.Duration
	SessionTTL         time.Duration
	SessionCapacity    int
	FallbackPrice      float64

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string
}

func Load() Config {
	return Config{
		Port:     getenvDefault("PORT", "8080"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		LeadsTable:         getenvDefault("LEADS_TABLE", "leads"),
		PaymentsTable:      getenvDefault("PAYMENTS_TABLE", "payments"),
		CategoriesTable:    getenvDefault("CATEGORIES_TABLE", "categories"),

		FunctionsBaseURL: strings.TrimRight(os.Getenv("FUNCTIONS_BASE_URL"), "/"),
		FunctionsAPIKey:  os.Getenv("FUNCTIONS_API_KEY"),

		GenerationTimeout:  getenvDuration("GENERATION_TIMEOUT", 8*time.Second),
		LeadFetchRetries:   getenvInt("LEAD_FETCH_RETRIES", 2),
		LeadFetchBaseDelay: getenvDuration("LEAD_FETCH_BASE_DELAY", time.Second),
		LeadFetchMaxDelay:  getenvDuration("LEAD_FETCH_MAX_DELAY", 30*time.Second),
		PollAttempts:       getenvInt("POLL_ATTEMPTS", 10),
		PollInterval:       getenvDuration("POLL_INTERVAL", 3*time.Second),
		SessionTTL:         getenvDuration("SESSION_TTL", 2*time.Hour),
		SessionCapacity:    getenvInt("SESSION_CAPACITY", 10000),
		FallbackPrice:      getenvFloat("FALLBACK_ESTIMATE_PRICE", 250),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		TestPayerEmail:         os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		TestPayerUserID:        os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// getenvDuration accepts Go durations ("8s", "1m30s") or whole seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
