package main

import (
	"context"
	"fmt"
	"os"

	"teoskills/internal/backend"
	"teoskills/internal/calendar"
	"teoskills/internal/cli"
	"teoskills/internal/events"
	"teoskills/internal/ident"
	"teoskills/internal/log"
	"teoskills/internal/skill"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, logger := cli.Setup(log.ComponentCalendar)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", log.FieldError, err)
		return 1
	}

	rawArg, ok := cli.Arg()
	if !ok {
		fmt.Println(skill.Error("No arguments provided"))
		return 0
	}

	result, err := backend.NewFactory(logger).Create(cfg)
	if err != nil {
		logger.Error("failed to initialize backend", log.FieldError, err)
		return 1
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("failed to initialize events client, continuing without publishing", log.FieldError, err)
		} else {
			defer eventsClient.Close()
		}
	}

	repo := calendar.NewRepository(result.Calendar, ident.NewGenerator(), logger)
	s := calendar.NewSkill(repo, eventsClient, logger)

	fmt.Println(s.Run(context.Background(), rawArg))
	return 0
}
