// Command tokengen mints bearer tokens for local development and tests.
package main

import (
	"fmt"
	"os"
	"time"

	"taskflow/internal/auth"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
)

var (
	app = kingpin.New("tokengen", "Mint a taskflow bearer token for an identity")

	email    = app.Flag("email", "Email of the identity").Short('e').Required().String()
	name     = app.Flag("name", "Display name").Short('n').Default("").String()
	username = app.Flag("username", "Username").Short('u').Default("").String()
	secret   = app.Flag("secret", "HMAC secret").Envar("JWT_SECRET").Default("supersecretkey").String()
	expiry   = app.Flag("expiry", "Token lifetime").Default("24h").Duration()
)

func main() {
	_ = godotenv.Load()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *expiry <= 0 {
		app.Fatalf("expiry must be positive, got %s", *expiry)
	}

	token, err := mint(*secret, *expiry, auth.Identity{Username: *username, Name: *name, Email: *email})
	if err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Println(token)
}

func mint(secret string, expiry time.Duration, id auth.Identity) (string, error) {
	token, err := auth.NewTokenManager(secret, expiry).GenerateToken(id)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
