package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/rpm-planner/internal/commands"
	"github.com/saulo-duarte/rpm-planner/internal/config"
)

func main() {
	config.Init()
	if os.Getenv("LOG_LEVEL") == "" {
		config.Logger.SetLevel(logrus.WarnLevel)
	}

	if err := commands.New().Execute(); err != nil {
		red := color.New(color.FgRed)
		if errors.Is(err, commands.ErrDataUnavailable) {
			_, _ = red.Fprintln(color.Error, "Your planning data is unavailable:", err)
		} else {
			_, _ = red.Fprintln(color.Error, fmt.Sprintf("error: %v", err))
		}
		os.Exit(1)
	}
}
