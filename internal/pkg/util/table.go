package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/EthanGalbraith/sqextralite/internal/sqextralite"
)

const (
	truncatedStringEnd = " ..."
	intLength          = 10 // digits in the largest uint32
	maxLength          = 40
)

func PrintTableHeader(w io.Writer, columns []sqextralite.Column) {
	columnSize, tableWidth := computeTableSize(columns)

	// add top horizontal header
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))

	for i, aColumn := range columns {
		// pad with columnSize[j] spaces on the right rather than the left (left-justify the field)
		// an asterisk * in the format specifies that the padding size should be given as an argument
		fmt.Fprintf(w, "| %-*s ", columnSize[i], aColumn.Name)
	}
	fmt.Fprintf(w, "|\n")

	// add horizontal border bellow the header row
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))
}

func PrintTableRow(w io.Writer, columns []sqextralite.Column, values []any) {
	columnSize, _ := computeTableSize(columns)

	for i, aValue := range values {
		aStringValue := fmt.Sprint(aValue)
		r := []rune(aStringValue)
		if len(r) > columnSize[i] {
			aStringValue = string(r[0:columnSize[i]-len(truncatedStringEnd)]) + truncatedStringEnd
		}
		fmt.Fprintf(w, "| %-*s ", columnSize[i], aStringValue)
	}
	fmt.Fprintf(w, "|\n")
}

func PrintTableEnd(w io.Writer, columns []sqextralite.Column) {
	_, tableWidth := computeTableSize(columns)

	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))
}

func computeTableSize(columns []sqextralite.Column) ([]int, int) {
	columnSize := make([]int, len(columns))
	for i, aColumn := range columns {
		if aColumn.Kind == sqextralite.Varchar {
			columnSize[i] = min(aColumn.Size, maxLength)
		} else {
			columnSize[i] = intLength
		}
		columnSize[i] = max(columnSize[i], len(aColumn.Name), len(truncatedStringEnd)+1)
	}

	// left border is | followed by a space, right border is space followed by | (2+2=4)
	// then between each column we have space, |, space (3)
	tableWidth := 4 + (len(columnSize)-1)*3
	for _, columnWidth := range columnSize {
		tableWidth += columnWidth
	}

	return columnSize, tableWidth
}
