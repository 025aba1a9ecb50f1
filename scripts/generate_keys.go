//go:build ignore

// Prints freshly generated secrets for a freight-service .env file.
// Run with: go run scripts/generate_keys.go [-admin ops@example.com]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
)

func secret(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		fmt.Fprintf(os.Stderr, "generate secret: %v\n", err)
		os.Exit(1)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

func main() {
	admin := flag.String("admin", "", "admin account email to seed on first start")
	flag.Parse()

	fmt.Println("# Authentication")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", secret(32))
	fmt.Printf("JWT_REFRESH_SECRET_KEY=%s\n", secret(32))
	fmt.Printf("API_KEYS=%s\n", secret(24))
	if *admin != "" {
		fmt.Printf("ADMIN_EMAIL=%s\n", *admin)
		fmt.Printf("ADMIN_PASSWORD=%s\n", secret(18))
	}
	fmt.Println()
	fmt.Println("# Swagger UI basic auth")
	fmt.Println("SWAGGER_USER=docs")
	fmt.Printf("SWAGGER_PASS=%s\n", secret(12))
}
