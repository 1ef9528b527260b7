package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    string
	CORSOrigins string
	CatalogPath string // optional YAML catalog; built-in catalog when empty
	OptionsPath string // optional YAML master option lists
	SubmitDelay time.Duration

	// Movement number seeds. Numbers restart from these on every boot
	// because nothing is persisted yet.
	TransferSeq int64
	ReceiverSeq int64
	MudMixSeq   int64
	InvoiceSeq  int64
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		OptionsPath: getEnv("OPTIONS_PATH", ""),
		SubmitDelay: time.Duration(getEnvInt("SUBMIT_DELAY_MS", 2000)) * time.Millisecond,
		TransferSeq: getEnvInt("SEQ_TRANSFER", 16771),
		ReceiverSeq: getEnvInt("SEQ_RECEIVER", 17145),
		MudMixSeq:   getEnvInt("SEQ_MUDMIX", 16527),
		InvoiceSeq:  getEnvInt("SEQ_INVOICE", 54945087),
	}

	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the development default.")
	}
	if cfg.CatalogPath == "" {
		log.Println("[WARN] CATALOG_PATH not set, using the built-in product catalog.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
