package main

import (
	"fmt"
	"os"

	"teoskills/internal/cli"
	"teoskills/internal/log"
	"teoskills/internal/tavily"
)

func main() {
	cfg, logger := cli.Setup(log.ComponentSkill)

	rawArg, ok := cli.Arg()
	if !ok {
		fmt.Println("Error: No arguments provided")
		os.Exit(1)
	}

	line, code := tavily.NewClient(cfg.TavilyAPIKey, logger).Run(rawArg)
	fmt.Println(line)
	os.Exit(code)
}
