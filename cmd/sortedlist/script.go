package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/sortedlist"
)

var (
	// ErrUnknownCommand is returned if a script contains a command that does not exist.
	ErrUnknownCommand = ierrors.New("unknown command")
	// ErrMissingArgument is returned if a command that needs a value is the last token of a script.
	ErrMissingArgument = ierrors.New("missing argument")
	// ErrInvalidArgument is returned if the value of a command is not an integer.
	ErrInvalidArgument = ierrors.New("invalid argument")
)

// region Operation ////////////////////////////////////////////////////////////////////////////////////////////////////

// Operation is the name of an operation on the list.
type Operation string

const (
	OperationInsert      Operation = "insert"
	OperationDeleteFront Operation = "deletefront"
	OperationDeleteRear  Operation = "deleterear"
	OperationDelete      Operation = "delete"
	OperationContains    Operation = "contains"
	OperationFront       Operation = "front"
	OperationRear        Operation = "rear"
	OperationSize        Operation = "size"
	OperationPrint       Operation = "print"
)

// operationsWithArgument maps every known Operation to whether it takes a value.
var operationsWithArgument = map[Operation]bool{
	OperationInsert:      true,
	OperationDeleteFront: false,
	OperationDeleteRear:  false,
	OperationDelete:      true,
	OperationContains:    true,
	OperationFront:       false,
	OperationRear:        false,
	OperationSize:        false,
	OperationPrint:       false,
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Command //////////////////////////////////////////////////////////////////////////////////////////////////////

// Command is a single step of a script.
type Command struct {
	Operation Operation
	Argument  int
}

// String returns the command the way it is written in a script.
func (c Command) String() string {
	if operationsWithArgument[c.Operation] {
		return fmt.Sprintf("%s %d", c.Operation, c.Argument)
	}

	return string(c.Operation)
}

// ParseScript turns a list of tokens into commands. Nothing is executed if any token is invalid.
func ParseScript(tokens []string) ([]Command, error) {
	commands := make([]Command, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		operation := Operation(strings.ToLower(tokens[i]))

		withArgument, known := operationsWithArgument[operation]
		if !known {
			return nil, ierrors.Wrapf(ErrUnknownCommand, "token %d: %q", i+1, tokens[i])
		}

		command := Command{Operation: operation}
		if withArgument {
			if i+1 == len(tokens) {
				return nil, ierrors.Wrapf(ErrMissingArgument, "token %d: %s needs a value", i+1, operation)
			}

			i++

			argument, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, ierrors.Wrapf(ErrInvalidArgument, "token %d: %q", i+1, tokens[i])
			}

			command.Argument = argument
		}

		commands = append(commands, command)
	}

	return commands, nil
}

// ReadScript returns the tokens of a script. Everything after a '#' up to the end of its line is ignored.
func ReadScript(reader io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		tokens = append(tokens, strings.Fields(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, ierrors.Wrap(err, "failed to read script")
	}

	return tokens, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Runner ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Runner executes commands against a SortedList and writes their results.
type Runner struct {
	list         *sortedlist.SortedList[int]
	output       io.Writer
	emptyMessage string
	logger       *zap.Logger
}

// NewRunner returns a Runner that works on an empty list.
func NewRunner(output io.Writer, emptyMessage string, logger *zap.Logger) *Runner {
	return &Runner{
		list:         sortedlist.New[int](),
		output:       output,
		emptyMessage: emptyMessage,
		logger:       logger,
	}
}

// List returns the list the Runner works on.
func (r *Runner) List() *sortedlist.SortedList[int] {
	return r.list
}

// Run executes all commands in order and stops at the first one that fails to write its result.
func (r *Runner) Run(commands []Command) error {
	for _, command := range commands {
		if err := r.execute(command); err != nil {
			return ierrors.Wrapf(err, "failed to execute %s", command)
		}

		r.logger.Debug("executed command", zap.Stringer("command", command), zap.Int("size", r.list.Size()))
	}

	r.logger.Info("script finished", zap.Int("commands", len(commands)), zap.Int("size", r.list.Size()))

	return nil
}

func (r *Runner) execute(command Command) error {
	switch command.Operation {
	case OperationInsert:
		r.list.Insert(command.Argument)
	case OperationDeleteFront:
		r.list.DeleteFront()
	case OperationDeleteRear:
		r.list.DeleteRear()
	case OperationDelete:
		return r.printf("%s: %t\n", command, r.list.DeleteValue(command.Argument))
	case OperationContains:
		return r.printf("%s: %t\n", command, r.list.Contains(command.Argument))
	case OperationFront:
		return r.printAccessor(r.list.Front())
	case OperationRear:
		return r.printAccessor(r.list.Rear())
	case OperationSize:
		return r.printf("%d\n", r.list.Size())
	case OperationPrint:
		return PrintList(r.output, r.list, r.emptyMessage)
	default:
		return ierrors.Wrapf(ErrUnknownCommand, "%q", command.Operation)
	}

	return nil
}

func (r *Runner) printAccessor(value int, err error) error {
	if err != nil {
		r.logger.Warn("accessor failed", zap.Error(err))

		return r.printf("%s\n", err)
	}

	return r.printf("%d\n", value)
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.output, format, args...)

	return err
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// withFinalPrint appends a print command unless the last command already prints the list.
func withFinalPrint(commands []Command) []Command {
	if len(commands) != 0 && commands[len(commands)-1].Operation == OperationPrint {
		return commands
	}

	return append(lo.CopySlice(commands), Command{Operation: OperationPrint})
}
