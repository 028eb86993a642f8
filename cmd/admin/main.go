package main

import (
	"fmt"
	"os"
)

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr}
	defer a.close()

	if err := rootCommand(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		a.close()
		os.Exit(1)
	}
}
