package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Generates a signed JWT for manual API testing.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "User ID for the token")
	role := flag.String("role", "COMPANY_ADMIN", "Role for the token")
	companyID := flag.String("company", "", "Company ID for the token")
	propertyIDs := flag.String("properties", "", "Comma-separated property IDs (for PROPERTY_MANAGER)")
	tenantID := flag.String("tenant", "", "Tenant record ID (for TENANT)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": *userID,
		"role":    *role,
		"exp":     now.Add(time.Duration(*expirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	if *companyID != "" {
		claims["company_id"] = *companyID
	}
	if *propertyIDs != "" {
		claims["property_ids"] = strings.Split(*propertyIDs, ",")
	}
	if *tenantID != "" {
		claims["tenant_id"] = *tenantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
