package codec

import "fmt"

// rowError reports a row whose length differs from the first row.
type rowError struct {
	row, got, want int
}

func (e rowError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.row, e.got, e.want)
}

// cellError reports a cell that does not fit in CellSize bytes.
type cellError struct {
	row, col, value int
}

func (e cellError) Error() string {
	return fmt.Sprintf("cell (%d, %d) = %d does not fit in int32", e.row, e.col, e.value)
}

// sizeError reports serialized data of the wrong length.
type sizeError struct {
	got, rows, cols int
}

func (e sizeError) Error() string {
	return fmt.Sprintf("%d bytes for a %dx%d table of %d-byte cells", e.got, e.rows, e.cols, CellSize)
}
