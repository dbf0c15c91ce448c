package types

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Error kinds returned by containers. Callers match them with errors.Is.
var (
	// ErrInvalidArgument is returned when constructor or operation argument is not acceptable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmpty is returned when operation requires element which is not there.
	ErrEmpty = errors.New("empty")

	// ErrOutOfRange is returned when index is outside of the container.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned when searched value does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when ordered container already holds equal element.
	ErrDuplicate = errors.New("duplicate element")

	// ErrComparator is returned when comparator result is not one of -1, 0, 1.
	ErrComparator = errors.New("comparator returned invalid result")

	// ErrCorrupted is returned when internal invariant does not hold.
	ErrCorrupted = errors.New("container corrupted")
)

// Compare is the three-way comparator. It must return -1 if a < b, 0 if a == b and 1 if a > b.
type Compare[T any] func(a, b T) int

// CompareOrdered is the comparator for ordered built-in types.
func CompareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Order enumerates tree traversal orders.
type Order byte

const (
	// PreOrder visits node before its subtrees.
	PreOrder Order = iota

	// InOrder visits left subtree, node, then right subtree.
	InOrder

	// PostOrder visits both subtrees before the node.
	PostOrder

	// LevelOrder visits nodes breadth-first.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// State enumerates possible slot states.
type State byte

const (
	// StateEmpty means slot is free.
	StateEmpty State = iota

	// StateOccupied means slot contains data.
	StateOccupied
)
