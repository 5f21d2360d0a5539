package main

import (
	"context"
	"fmt"
	"os"

	"teoskills/internal/cli"
	"teoskills/internal/log"
	"teoskills/internal/notes"
	"teoskills/internal/skill"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, logger := cli.Setup(log.ComponentNotes)

	rawArg, ok := cli.Arg()
	if !ok {
		fmt.Println(skill.Error("No arguments provided"))
		return 0
	}

	store := notes.NewStore(cfg.NotesDir(), logger)
	s := notes.NewSkill(store, logger)

	fmt.Println(s.Run(context.Background(), rawArg))
	return 0
}
