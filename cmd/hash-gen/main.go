package main

import (
	"fmt"
	"log"
	"os"

	"sparkier.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// resolvePassword takes the password from the first argument, falling
// back to a throwaway default for local seeding.
func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "Spark.Starter-45"
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password := resolvePassword(os.Args[1:])

	printfFn("Generating hash for password: %s\n", password)

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hash)
	printfFn("Insert into users.password_hash, then promote with grant-admin if needed.\n")
}
