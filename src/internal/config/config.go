package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=statement_delivery_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultChannelID = "CBankApp"
const defaultChannelKey = "CBankKey001"
const defaultListenAddr = ":8080"
const defaultStorageEndpoint = "localhost:9000"
const defaultStorageBucket = "customer-statements"
const defaultRetrievalURLBase = "/api/v1/public/"
const defaultLinkExpiryMins = 45
const defaultRateLimitCapacity = 10
const defaultRateLimitWindowSecs = 60

// StatementExpiryMins is the fixed lifetime of a statement record. The
// presigned link TTL must be at least this long or retrieval can fail before
// the record itself expires.
const StatementExpiryMins = 30

type Config struct {
	ListenAddr        string
	DatabaseDSN       string
	MigrationsDir     string
	ChannelID         string
	ChannelKey        string
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	LinkExpiryMins    int
	RetrievalURLBase  string
	PDFMasterSecret   string
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	linkExpiryMins, err := intEnv("STORAGE_LINK_EXPIRY_MINS", defaultLinkExpiryMins)
	if err != nil {
		return Config{}, err
	}
	if linkExpiryMins < StatementExpiryMins {
		return Config{}, fmt.Errorf("STORAGE_LINK_EXPIRY_MINS (%d) must be at least the statement expiry of %d minutes", linkExpiryMins, StatementExpiryMins)
	}

	rateLimitCapacity, err := intEnv("RATE_LIMIT_CAPACITY", defaultRateLimitCapacity)
	if err != nil {
		return Config{}, err
	}
	if rateLimitCapacity < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY must be at least 1")
	}

	rateLimitWindowSecs, err := intEnv("RATE_LIMIT_WINDOW_SECS", defaultRateLimitWindowSecs)
	if err != nil {
		return Config{}, err
	}
	if rateLimitWindowSecs < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW_SECS must be at least 1")
	}

	return Config{
		ListenAddr:        stringEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseDSN:       normalizeConnectionString(conn),
		MigrationsDir:     filepath.Join("src", "migrations"),
		ChannelID:         stringEnv("CHANNEL_ID", defaultChannelID),
		ChannelKey:        stringEnv("CHANNEL_KEY", defaultChannelKey),
		StorageEndpoint:   stringEnv("STORAGE_ENDPOINT", defaultStorageEndpoint),
		StorageAccessKey:  stringEnv("STORAGE_ACCESS_KEY", "statements"),
		StorageSecretKey:  stringEnv("STORAGE_SECRET_KEY", "statements-secret"),
		StorageBucket:     stringEnv("STORAGE_BUCKET", defaultStorageBucket),
		StorageUseSSL:     strings.EqualFold(stringEnv("STORAGE_USE_SSL", "false"), "true"),
		LinkExpiryMins:    linkExpiryMins,
		RetrievalURLBase:  stringEnv("RETRIEVAL_URL_BASE", defaultRetrievalURLBase),
		PDFMasterSecret:   stringEnv("PDF_MASTER_SECRET", "change-me-master-secret"),
		RateLimitCapacity: rateLimitCapacity,
		RateLimitWindow:   time.Duration(rateLimitWindowSecs) * time.Second,
	}, nil
}

func stringEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
