// Package main provides the Grad ML Framework CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Grad ML Framework %s\n", version)
		return
	}

	fmt.Println("Grad ML Framework - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/ for runnable training programs.")
}
