package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/EthanGalbraith/sqextralite/internal/parser"
	"github.com/EthanGalbraith/sqextralite/internal/pkg/util"
	"github.com/EthanGalbraith/sqextralite/internal/sqextralite"
)

const (
	DefaultPrompt = "db > "
	maxLineSize   = 1024 * 1024
)

type REPL struct {
	logger   *zap.Logger
	database *sqextralite.Database
	out      io.Writer
	prompt   string
}

func New(logger *zap.Logger, aDatabase *sqextralite.Database, out io.Writer, prompt string) *REPL {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &REPL{
		logger:   logger,
		database: aDatabase,
		out:      out,
		prompt:   prompt,
	}
}

func (r *REPL) printPrompt() {
	fmt.Fprint(r.out, r.prompt)
}

// Run reads commands line by line until .exit, end of input or
// cancelled context
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReaderSize(in, 4096)

	r.printPrompt()

	for {
		line, tooLong, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if tooLong {
			r.logger.Debug("input line too long", zap.Int("max_line_size", maxLineSize))
			fmt.Fprintln(r.out, "String is too long.")
			r.printPrompt()
			continue
		}

		inputBuffer := strings.TrimSpace(line)
		if inputBuffer == "" {
			r.printPrompt()
			continue
		}

		if parser.IsMetaCommand(inputBuffer) {
			if exit := r.doMetaCommand(inputBuffer); exit {
				return nil
			}
		} else {
			r.doStatement(ctx, inputBuffer)
		}

		r.printPrompt()
	}

	// Print an additional line if we encountered an EOF character
	fmt.Fprintln(r.out)
	return nil
}

// readLine returns the next line without its line ending. A line longer
// than maxLineSize is read to its end and discarded, tooLong is set instead.
func readLine(reader *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		fragment, isPrefix, err := reader.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(fragment) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, fragment...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (r *REPL) doMetaCommand(inputBuffer string) bool {
	switch parser.ParseMetaCommand(inputBuffer) {
	case parser.Exit:
		return true
	case parser.Help:
		fmt.Fprintln(r.out, ".help       - Show available commands")
		fmt.Fprintln(r.out, ".exit       - Closes program")
		fmt.Fprintln(r.out, ".constants  - Show storage layout constants")
		fmt.Fprintln(r.out, ".stats      - Show number of rows and allocated pages")
		fmt.Fprintln(r.out, "insert <id> <username> <email>")
		fmt.Fprintln(r.out, "select")
	case parser.Constants:
		fmt.Fprintln(r.out, "Constants:")
		fmt.Fprintf(r.out, "ROW_SIZE: %d\n", sqextralite.RowSize)
		fmt.Fprintf(r.out, "PAGE_SIZE: %d\n", sqextralite.PageSize)
		fmt.Fprintf(r.out, "ROWS_PER_PAGE: %d\n", sqextralite.RowsPerPage)
		fmt.Fprintf(r.out, "MAX_PAGES: %d\n", sqextralite.MaxPages)
		fmt.Fprintf(r.out, "MAX_ROWS: %d\n", sqextralite.MaxRows)
	case parser.Stats:
		stats := r.database.Stats()
		fmt.Fprintf(r.out, "Rows: %d/%d\n", stats.NumRows, stats.MaxRows)
		fmt.Fprintf(r.out, "Pages: %d/%d\n", stats.TotalPages, stats.MaxPages)
	case parser.Unknown:
		fmt.Fprintf(r.out, "Command not recognized: '%s'\n", inputBuffer)
	}
	return false
}

func (r *REPL) doStatement(ctx context.Context, inputBuffer string) {
	stmt, err := r.database.PrepareStatement(ctx, inputBuffer)
	if err != nil {
		r.logger.Debug("prepare statement failed", zap.String("input", inputBuffer), zap.Error(err))
		r.printError(inputBuffer, err)
		return
	}

	aResult, err := r.database.ExecuteStatement(ctx, stmt)
	if err != nil {
		r.logger.Debug("execute statement failed", zap.Stringer("kind", stmt.Kind), zap.Error(err))
		r.printError(inputBuffer, err)
		return
	}

	if stmt.Kind == sqextralite.Select {
		util.PrintTableHeader(r.out, aResult.Columns)
		aRow, err := aResult.Rows(ctx)
		for ; err == nil; aRow, err = aResult.Rows(ctx) {
			util.PrintTableRow(r.out, aResult.Columns, aRow.Values())
		}
		util.PrintTableEnd(r.out, aResult.Columns)
		if !errors.Is(err, sqextralite.ErrNoMoreRows) {
			r.printError(inputBuffer, err)
			return
		}
	}

	fmt.Fprintln(r.out, "Statement executed.")
}

func (r *REPL) printError(inputBuffer string, err error) {
	switch {
	case errors.Is(err, parser.ErrUnrecognizedStatement):
		fmt.Fprintf(r.out, "Unrecognized keyword at '%s' \n", inputBuffer)
	case errors.Is(err, parser.ErrNegativeID):
		fmt.Fprintln(r.out, "ID must be positive.")
	case errors.Is(err, parser.ErrIDOutOfRange):
		fmt.Fprintln(r.out, "ID is out of range.")
	case errors.Is(err, parser.ErrSyntax):
		fmt.Fprintln(r.out, "Syntax error. Could not parse statement.")
	case errors.Is(err, sqextralite.ErrRowTooLong):
		fmt.Fprintln(r.out, "String is too long.")
	case errors.Is(err, sqextralite.ErrInvalidString):
		fmt.Fprintln(r.out, "String contains invalid characters.")
	case errors.Is(err, sqextralite.ErrTableFull):
		fmt.Fprintln(r.out, "Error: Table full.")
	default:
		fmt.Fprintf(r.out, "Error executing statement: %s\n", err)
	}
}
