// Package codec converts DFA transition tables to and from the text form
// embedded in generated scanners.
//
// The wire format is fixed, since every scanner generated so far decodes
// it:
//
//  1. cells in row-major order, each a 4-byte big-endian two's complement
//     integer;
//  2. the bytes compressed as one gzip member;
//  3. the gzip stream encoded with standard padded base64.
//
// The format carries no dimensions. The row and column counts travel next to
// the encoded string and must match what was encoded.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"

	"github.com/pradeesh-kumar/lex-engine/internal/conv"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// CellSize is the number of bytes per table cell.
const CellSize = 4

// Serialize writes table in row-major order. All rows must have the same
// length.
func Serialize(table [][]int) ([]byte, error) {
	cols := 0
	if len(table) > 0 {
		cols = len(table[0])
	}
	out := make([]byte, 0, len(table)*cols*CellSize)
	for i, row := range table {
		if len(row) != cols {
			return nil, lexerr.CodecErr("table is not rectangular", rowError{row: i, got: len(row), want: cols})
		}
		for j, cell := range row {
			if cell < math.MinInt32 || cell > math.MaxInt32 {
				return nil, lexerr.CodecErr("cell out of int32 range", cellError{row: i, col: j, value: cell})
			}
			out = binary.BigEndian.AppendUint32(out, conv.Int32ToUint32(conv.IntToInt32(cell)))
		}
	}
	return out, nil
}

// Deserialize reads a rows x cols table written by Serialize.
func Deserialize(data []byte, rows, cols int) ([][]int, error) {
	if rows < 0 || cols < 0 {
		return nil, lexerr.CodecErr("negative table dimensions", nil)
	}
	if len(data) != rows*cols*CellSize {
		return nil, lexerr.CodecErr("table size does not match dimensions", sizeError{got: len(data), rows: rows, cols: cols})
	}
	table := make([][]int, rows)
	off := 0
	for i := range table {
		row := make([]int, cols)
		for j := range row {
			row[j] = int(conv.Uint32ToInt32(binary.BigEndian.Uint32(data[off:])))
			off += CellSize
		}
		table[i] = row
	}
	return table, nil
}

// Compress gzips data.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, lexerr.CodecErr("compress", err)
	}
	if err := zw.Close(); err != nil {
		return nil, lexerr.CodecErr("compress", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, lexerr.CodecErr("decompress", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, lexerr.CodecErr("decompress", err)
	}
	return out, nil
}

// Encode serializes, compresses and base64-encodes table.
func Encode(table [][]int) (string, error) {
	raw, err := Serialize(table)
	if err != nil {
		return "", err
	}
	z, err := Compress(raw)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(z), nil
}

// Decode reverses Encode for a rows x cols table.
func Decode(s string, rows, cols int) ([][]int, error) {
	z, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, lexerr.CodecErr("base64", err)
	}
	raw, err := Decompress(z)
	if err != nil {
		return nil, err
	}
	return Deserialize(raw, rows, cols)
}
