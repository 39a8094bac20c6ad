package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"sparkier.backend/pkg/utils"
)

var (
	printfFn = fmt.Printf
	fatalfFn = log.Fatalf
)

func slugify(args []string) (string, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return "", fmt.Errorf("usage: slugify <name>")
	}

	slug := utils.GenerateSlug(name)
	if slug == "" {
		return "", fmt.Errorf("no slug material in %q", name)
	}
	return slug, nil
}

func main() {
	slug, err := slugify(os.Args[1:])
	if err != nil {
		fatalfFn("%v", err)
	}
	printfFn("%s\n", slug)
}
