package sortedlist

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrEmptyStructure is returned when the first or last value of an empty SortedList is requested.
var ErrEmptyStructure = ierrors.New("structure is empty")
