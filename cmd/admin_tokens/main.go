// Command admin_tokens issues credentials for the admin API: a service API key
// with the bcrypt hash to put in API_KEY_HASH, or a signed admin JWT for local use.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/investment_admin_core/internal/platform/config"
	"github.com/SscSPs/investment_admin_core/internal/utils"
)

func main() {
	mode := flag.String("mode", "apikey", "what to issue: apikey or jwt")
	adminUID := flag.String("uid", "", "admin UID (jwt mode)")
	email := flag.String("email", "", "admin email (jwt mode)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch *mode {
	case "apikey":
		key, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			logger.Error("Failed to generate API key", slog.String("error", err.Error()))
			os.Exit(1)
		}
		hash, err := utils.HashAPIKey(key)
		if err != nil {
			logger.Error("Failed to hash API key", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("API key:      %s\nAPI_KEY_HASH: %s\n", key, hash)

	case "jwt":
		if *adminUID == "" {
			logger.Error("-uid is required in jwt mode")
			os.Exit(2)
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Error("Failed to load config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		token, err := utils.GenerateJWT(*adminUID, *email, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
		if err != nil {
			logger.Error("Failed to sign token", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(token)

	default:
		logger.Error("Unknown mode", slog.String("mode", *mode))
		os.Exit(2)
	}
}
