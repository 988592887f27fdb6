package main

import (
	"fmt"
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/sortedlist"
)

// PrintList writes every value of the list on its own line, or emptyMessage if the list has no values.
func PrintList[T any](w io.Writer, list *sortedlist.SortedList[T], emptyMessage string) error {
	if list.IsEmpty() {
		if _, err := fmt.Fprintln(w, emptyMessage); err != nil {
			return ierrors.Wrap(err, "failed to print empty list")
		}

		return nil
	}

	for value := range list.Traverse() {
		if _, err := fmt.Fprintln(w, value); err != nil {
			return ierrors.Wrapf(err, "failed to print value %v", value)
		}
	}

	return nil
}
