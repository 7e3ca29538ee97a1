package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
)

// SigningKey returns the JWT signing key: JWT_SECRET when set, otherwise a
// random per-process key (tokens then die with the process, fine for dev).
func SigningKey() string {
	if Env.JWTSecret != "" {
		return Env.JWTSecret
	}
	return GenerateRandomKey()
}

// GenerateRandomKey returns a random 64-char hex string.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	return hex.EncodeToString(b)
}
