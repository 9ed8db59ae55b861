package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// runMenu drives the interactive mode selection. Input and validation
// problems are reported as a message and the mode is aborted cleanly; only
// setup failures (config, logger, terminal) surface as errors.
func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	modePrompt := promptui.Select{
		Label: "Mode",
		Items: []string{
			"Multiply two matrix files",
			"Multiply two matrix files with an intermediate cell log",
			"Generate and multiply random matrix pairs",
		},
	}
	mode, _, err := modePrompt.Run()
	if err != nil {
		return err
	}

	switch mode {
	case 0, 1:
		aPath, err := ask("First matrix file")
		if err != nil {
			return err
		}
		bPath, err := ask("Second matrix file")
		if err != nil {
			return err
		}
		logPath := ""
		if mode == 1 {
			if logPath, err = ask("Intermediate log file"); err != nil {
				return err
			}
		}
		outPath, err := ask("Result file")
		if err != nil {
			return err
		}
		if err := multiplyFiles(logger, aPath, bPath, outPath, logPath, cfg.workersOrDefault(0)); err != nil {
			fmt.Println(err)
			return nil
		}
	case 2:
		size, err := askInt("Matrix size")
		if err != nil {
			return err
		}
		count, err := askInt("Number of matrix pairs")
		if err != nil {
			return err
		}
		if err := streamDemo(logger, cfg, size, count, cfg.workersOrDefault(0)); err != nil {
			fmt.Println(err)
			return nil
		}
	}
	return nil
}

func ask(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func askInt(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(in string) error {
			if _, err := strconv.Atoi(in); err != nil {
				return errors.New("enter an integer")
			}
			return nil
		},
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
