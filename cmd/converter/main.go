package main

import (
	"fmt"
	"os"

	"teoskills/internal/cli"
	"teoskills/internal/converter"
)

func main() {
	rawArg, ok := cli.Arg()
	if !ok {
		fmt.Println("Error: No arguments provided")
		os.Exit(1)
	}

	line, code := converter.Run(rawArg)
	fmt.Println(line)
	os.Exit(code)
}
