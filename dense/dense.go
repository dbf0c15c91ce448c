package dense

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/dats/dynarray"
	"github.com/outofforest/dats/types"
)

// InitialCapacity is the initial capacity of both lookup and data arrays.
const InitialCapacity = 4

// lookupCell maps external index to the data slot. DataIndex is the back-reference: it is meaningful in the cell
// located at position k and stores external index of the element kept in data slot k.
type lookupCell struct {
	State     types.State
	Index     uint64
	DataIndex uint64
}

// New creates new dense array.
func New[T comparable]() *Array[T] {
	return &Array[T]{
		lookup: dynarray.NewSized[lookupCell](InitialCapacity),
		data:   dynarray.NewSized[T](InitialCapacity),
	}
}

// Array provides stable external indices over compacted data array.
// Removal moves the last element into the freed slot so data stays contiguous.
type Array[T comparable] struct {
	lookup *dynarray.Array[lookupCell]
	data   *dynarray.Array[T]
}

// Length returns the number of stored elements.
func (a *Array[T]) Length() uint64 {
	return a.data.Length()
}

// LookupLength returns the number of lookup cells, one above the highest index ever inserted.
func (a *Array[T]) LookupLength() uint64 {
	return a.lookup.Length()
}

// Insert stores v under index. Existing element under that index is overwritten.
func (a *Array[T]) Insert(index uint64, v T) error {
	for a.lookup.Length() <= index {
		a.lookup.Add(lookupCell{})
	}

	cell, err := a.lookup.Ref(index)
	if err != nil {
		return err
	}
	if cell.State == types.StateOccupied {
		return a.data.Insert(cell.Index, v)
	}

	dataLength := a.data.Length()
	if dataLength >= a.lookup.Length() {
		return errors.Wrapf(types.ErrCorrupted, "data length %d reached lookup length %d", dataLength,
			a.lookup.Length())
	}

	cell.State = types.StateOccupied
	cell.Index = dataLength

	backCell, err := a.lookup.Ref(dataLength)
	if err != nil {
		return err
	}
	backCell.DataIndex = index

	a.data.Add(v)
	return nil
}

// Remove removes element stored under index and returns it.
func (a *Array[T]) Remove(index uint64) (T, error) {
	var zero T

	cell, err := a.occupiedCell(index)
	if err != nil {
		return zero, err
	}

	freed := cell.Index
	v, err := a.data.Get(freed)
	if err != nil {
		return zero, err
	}

	last := a.data.Length() - 1
	cell.State = types.StateEmpty

	lastValue, err := a.data.Get(last)
	if err != nil {
		return zero, err
	}
	if err := a.data.Insert(freed, lastValue); err != nil {
		return zero, err
	}

	lastCell, err := a.lookup.Ref(last)
	if err != nil {
		return zero, err
	}
	moved := lastCell.DataIndex

	movedCell, err := a.lookup.Ref(moved)
	if err != nil {
		return zero, err
	}
	movedCell.Index = freed

	freedCell, err := a.lookup.Ref(freed)
	if err != nil {
		return zero, err
	}
	freedCell.DataIndex = moved

	if err := a.data.Truncate(last); err != nil {
		return zero, err
	}
	return v, nil
}

// Get returns element stored under index.
func (a *Array[T]) Get(index uint64) (T, error) {
	cell, err := a.occupiedCell(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data.Get(cell.Index)
}

// Ref returns pointer to the element stored under index. Pointer is valid until next mutating call.
func (a *Array[T]) Ref(index uint64) (*T, error) {
	cell, err := a.occupiedCell(index)
	if err != nil {
		return nil, err
	}
	return a.data.Ref(cell.Index)
}

// Occupied checks if there is element stored under index.
func (a *Array[T]) Occupied(index uint64) bool {
	_, err := a.occupiedCell(index)
	return err == nil
}

// Contains checks if element equal to v is stored.
func (a *Array[T]) Contains(v T) bool {
	return a.data.Contains(v)
}

// Iterator iterates over external indices and their elements in data order.
func (a *Array[T]) Iterator() func(func(uint64, T) bool) {
	return func(yield func(uint64, T) bool) {
		for k, v := range a.data.Iterator() {
			cell, err := a.lookup.Ref(k)
			if err != nil {
				return
			}
			if !yield(cell.DataIndex, v) {
				return
			}
		}
	}
}

// Map calls f for every stored element.
func (a *Array[T]) Map(f func(uint64, T)) {
	for index, v := range a.Iterator() {
		f(index, v)
	}
}

// Clear removes all the elements keeping allocated memory.
func (a *Array[T]) Clear() {
	a.lookup.Clear()
	a.data.Clear()
}

// Free releases memory of both arrays. Array might still be used and starts empty.
func (a *Array[T]) Free() {
	a.lookup.Free()
	a.data.Free()
}

// Verify checks consistency between lookup and data arrays.
func (a *Array[T]) Verify() error {
	lookupLength := a.lookup.Length()
	dataLength := a.data.Length()
	if dataLength > lookupLength {
		return errors.Wrapf(types.ErrCorrupted, "data length %d exceeds lookup length %d", dataLength, lookupLength)
	}

	var occupied uint64
	for i, cell := range a.lookup.Iterator() {
		if cell.State != types.StateOccupied {
			continue
		}
		occupied++

		if cell.Index >= dataLength {
			return errors.Wrapf(types.ErrCorrupted, "cell %d points to slot %d beyond data length %d", i, cell.Index,
				dataLength)
		}
		backCell, err := a.lookup.Get(cell.Index)
		if err != nil {
			return err
		}
		if backCell.DataIndex != i {
			return errors.Wrapf(types.ErrCorrupted, "slot %d refers back to %d instead of %d", cell.Index,
				backCell.DataIndex, i)
		}
	}

	if occupied != dataLength {
		return errors.Wrapf(types.ErrCorrupted, "%d occupied cells, data length %d", occupied, dataLength)
	}
	return nil
}

// String returns human-readable picture of lookup and data arrays.
func (a *Array[T]) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "LOOKUP l: %d:\n", a.lookup.Length())
	for _, cell := range a.lookup.Iterator() {
		if cell.State == types.StateEmpty {
			b.WriteString("[X] ")
			continue
		}
		fmt.Fprintf(b, "[%d] ", cell.Index)
	}
	fmt.Fprintf(b, "\nDATA l: %d:\n", a.data.Length())
	for _, v := range a.data.Iterator() {
		fmt.Fprintf(b, "[%v] ", v)
	}
	b.WriteString("\n")
	return b.String()
}

func (a *Array[T]) occupiedCell(index uint64) (*lookupCell, error) {
	if index >= a.lookup.Length() {
		return nil, errors.Wrapf(types.ErrOutOfRange, "index %d, lookup length %d", index, a.lookup.Length())
	}
	cell, err := a.lookup.Ref(index)
	if err != nil {
		return nil, err
	}
	if cell.State == types.StateEmpty {
		return nil, errors.Wrapf(types.ErrEmpty, "no data under index %d", index)
	}
	return cell, nil
}
