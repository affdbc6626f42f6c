package sqextralite

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// RowSize is the size of every serialized row, there is no variable
	// length encoding and no per row header
	RowSize = IDSize + UsernameSize + EmailSize
)

type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate checks that text fields fit into their fixed width columns
func (r Row) Validate() error {
	if err := validateText("username", r.Username, UsernameSize); err != nil {
		return err
	}
	return validateText("email", r.Email, EmailSize)
}

func validateText(name, value string, size int) error {
	if len(value) > size {
		return fmt.Errorf("%w: %s is %d bytes, maximum is %d", ErrRowTooLong, name, len(value), size)
	}
	if strings.IndexByte(value, 0) >= 0 {
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidString, name)
	}
	return nil
}

// Values returns row values in column order
func (r Row) Values() []any {
	return []any{r.ID, r.Username, r.Email}
}

// Marshal packs the row into the first RowSize bytes of buf.
// The buffer is not modified when the row is rejected.
func (r Row) Marshal(buf []byte) error {
	if len(buf) < RowSize {
		return fmt.Errorf("row buffer too small: %d bytes, need %d", len(buf), RowSize)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	binary.NativeEndian.PutUint32(buf[IDOffset:], r.ID)
	marshalText(buf[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	marshalText(buf[EmailOffset:EmailOffset+EmailSize], r.Email)

	return nil
}

// UnmarshalRow unpacks RowSize bytes of buf into aRow
func UnmarshalRow(buf []byte, aRow *Row) error {
	if len(buf) < RowSize {
		return fmt.Errorf("row buffer too small: %d bytes, need %d", len(buf), RowSize)
	}

	aRow.ID = binary.NativeEndian.Uint32(buf[IDOffset:])
	aRow.Username = unmarshalText(buf[UsernameOffset : UsernameOffset+UsernameSize])
	aRow.Email = unmarshalText(buf[EmailOffset : EmailOffset+EmailSize])

	return nil
}

// marshalText copies value into field and zeroes the rest of it
func marshalText(field []byte, value string) {
	n := copy(field, value)
	clear(field[n:])
}

// unmarshalText reads until the first NUL byte or the end of the field
func unmarshalText(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}
	return string(field)
}
