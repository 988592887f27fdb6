package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseScript(t *testing.T) {
	commands, err := ParseScript([]string{"insert", "5", "INSERT", "-1", "deleteFront", "DeleteRear", "delete", "3", "contains", "4", "front", "rear", "size", "print"})
	require.NoError(t, err)
	require.Equal(t, []Command{
		{Operation: OperationInsert, Argument: 5},
		{Operation: OperationInsert, Argument: -1},
		{Operation: OperationDeleteFront},
		{Operation: OperationDeleteRear},
		{Operation: OperationDelete, Argument: 3},
		{Operation: OperationContains, Argument: 4},
		{Operation: OperationFront},
		{Operation: OperationRear},
		{Operation: OperationSize},
		{Operation: OperationPrint},
	}, commands)

	commands, err = ParseScript(nil)
	require.NoError(t, err)
	require.Empty(t, commands)
}

func TestParseScript_Errors(t *testing.T) {
	_, err := ParseScript([]string{"insert", "1", "pop"})
	require.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseScript([]string{"insert"})
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = ParseScript([]string{"contains", "three"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReadScript(t *testing.T) {
	tokens, err := ReadScript(strings.NewReader("# build the list\ninsert 5 insert 1\n\ninsert 3 # unordered\nprint\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"insert", "5", "insert", "1", "insert", "3", "print"}, tokens)
}

func TestCommand_String(t *testing.T) {
	require.Equal(t, "insert 7", Command{Operation: OperationInsert, Argument: 7}.String())
	require.Equal(t, "deletefront", Command{Operation: OperationDeleteFront}.String())
}

func TestRunner_Run(t *testing.T) {
	output := new(bytes.Buffer)
	runner := NewRunner(output, "List is Empty.", zaptest.NewLogger(t))

	commands, err := ParseScript(strings.Fields("front print insert 5 insert 1 insert 3 print size front rear delete 3 delete 3 contains 5 contains 3 deleteRear deleteRear deleteRear size rear"))
	require.NoError(t, err)
	require.NoError(t, runner.Run(commands))

	require.Equal(t, strings.Join([]string{
		"failed to retrieve front: structure is empty",
		"List is Empty.",
		"1",
		"3",
		"5",
		"3",
		"1",
		"5",
		"delete 3: true",
		"delete 3: false",
		"contains 5: true",
		"contains 3: false",
		"0",
		"failed to retrieve rear: structure is empty",
	}, "\n")+"\n", output.String())

	require.True(t, runner.List().IsEmpty())
}

func TestRunner_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	runner := NewRunner(new(bytes.Buffer), "", zap.New(core))

	require.NoError(t, runner.Run([]Command{
		{Operation: OperationInsert, Argument: 2},
		{Operation: OperationInsert, Argument: 2},
		{Operation: OperationRear},
	}))

	require.Equal(t, 3, logs.FilterMessage("executed command").Len())

	finished := logs.FilterMessage("script finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, int64(2), finished[0].ContextMap()["size"])
}

func TestWithFinalPrint(t *testing.T) {
	require.Equal(t, []Command{{Operation: OperationPrint}}, withFinalPrint(nil))

	commands := []Command{{Operation: OperationInsert, Argument: 1}}
	require.Equal(t, []Command{{Operation: OperationInsert, Argument: 1}, {Operation: OperationPrint}}, withFinalPrint(commands))
	require.Len(t, commands, 1)

	printing := []Command{{Operation: OperationPrint}}
	require.Equal(t, printing, withFinalPrint(printing))
}
