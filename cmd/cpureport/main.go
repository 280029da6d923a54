package main

import (
	"fmt"
	"os"

	"github.com/perftools/cpureport"
)

func main() {
	if err := cpureport.RunCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
