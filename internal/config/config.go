package config

import (
	"log"
	"os"
)

// Payment holds the offline payment details shown on the order
// confirmation page. Buyers transfer manually and quote the order reference.
type Payment struct {
	BankName      string
	AccountName   string
	AccountNumber string
	IFSC          string
	UPIID         string
}

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string
	Payment  Payment
}

func Load() Config {
	cfg := Config{
		Port:     getenv("PORT", "8080"),
		DBDSN:    getenv("DB_DSN", "brushworks.db"),
		MediaDir: getenv("MEDIA_DIR", "./web/media"),
		LogFile:  getenv("LOG_FILE", "./brushworks.log"),
		Payment: Payment{
			BankName:      getenv("PAY_BANK_NAME", "State Bank of India"),
			AccountName:   getenv("PAY_ACCOUNT_NAME", "Brushworks Studio"),
			AccountNumber: getenv("PAY_ACCOUNT_NUMBER", "00000000000"),
			IFSC:          getenv("PAY_IFSC", "SBIN0000000"),
			UPIID:         getenv("PAY_UPI_ID", "brushworks@upi"),
		},
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
