// sortedlist builds a sorted list of integers from a script of commands and prints the result.
//
// Usage:
//
//	sortedlist [flags] insert 5 insert 1 insert 3 delete 3 print
//	sortedlist [flags] --script commands.txt
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, output io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return ierrors.Wrap(err, "failed to parse flags")
	}

	config, err := loadConfig(flagSet)
	if err != nil {
		return err
	}

	logger, err := newLogger(config.Logger)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer logger.Sync()

	tokens, err := scriptTokens(config.Script, flagSet.Args())
	if err != nil {
		return err
	}

	commands, err := ParseScript(tokens)
	if err != nil {
		return ierrors.Wrap(err, "failed to parse script")
	}

	if config.Print.Final {
		commands = withFinalPrint(commands)
	}

	logger.Debug("loaded script", zap.Int("commands", len(commands)), zap.String("script", config.Script))

	return NewRunner(output, config.Print.EmptyMessage, logger).Run(commands)
}

// scriptTokens reads the tokens from the script file if one is configured and falls back to the positional arguments.
func scriptTokens(scriptPath string, args []string) ([]string, error) {
	if scriptPath == "" {
		return args, nil
	}

	if len(args) != 0 {
		return nil, ierrors.Errorf("positional commands can not be combined with the script %s", scriptPath)
	}

	scriptFile, err := os.Open(scriptPath)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to open script %s", scriptPath)
	}
	defer scriptFile.Close()

	return ReadScript(scriptFile)
}
