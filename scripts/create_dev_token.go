package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func main() {
	// Parse command line flags
	user := flag.String("user", "dev-user", "User identifier to embed in the token")
	role := flag.String("role", "admin", "User role (admin or user)")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
		fmt.Println("JWT_SECRET not set, using the development default")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user": *user,
		"role": *role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("✓ Development token created for user '%s' with role '%s'!\n", *user, *role)
	fmt.Printf("Token: %s\n", tokenString)
	fmt.Println("\nUse it against the admin catalog endpoints:")
	fmt.Printf("curl -X POST http://localhost:8080/admin/toppings \\\n")
	fmt.Printf("  -H 'Authorization: Bearer %s' \\\n", tokenString)
	fmt.Printf("  -d '{\"name\": \"Extra cheese\", \"price\": 2.50}'\n")
}
