package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/EthanGalbraith/sqextralite/internal/sqextralite"
)

var (
	ErrSyntax                = errors.New("syntax error")
	ErrNegativeID            = errors.New("id must be positive")
	ErrIDOutOfRange          = errors.New("id is out of range")
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
)

type step int

const (
	stepBeginning step = iota + 1
	stepInsertID
	stepInsertUsername
	stepInsertEmail
	stepStatementEnd
)

type parser struct {
	sqextralite.Statement
	i     int // where we are in the input
	input string
	step  step
}

func New() *parser {
	return new(parser)
}

// Parse turns one line of input into a statement:
//
//	insert <id> <username> <email>
//	select
func (p *parser) Parse(ctx context.Context, input string) (sqextralite.Statement, error) {
	p.reset()
	p.setInput(input)

	stmt, err := p.doParse()
	if err != nil {
		return sqextralite.Statement{}, err
	}
	return stmt, nil
}

func (p *parser) setInput(input string) *parser {
	p.input = strings.Join(strings.Fields(input), " ")
	return p
}

func (p *parser) reset() {
	p.Statement = sqextralite.Statement{}
	p.input = ""
	p.step = stepBeginning
	p.i = 0
}

func (p *parser) doParse() (sqextralite.Statement, error) {
	for {
		switch p.step {
		case stepBeginning:
			switch strings.ToUpper(p.peek()) {
			case "INSERT":
				p.Kind = sqextralite.Insert
				p.pop()
				p.step = stepInsertID
			case "SELECT":
				p.Kind = sqextralite.Select
				p.pop()
				p.step = stepStatementEnd
			default:
				return p.Statement, fmt.Errorf("%w: '%s'", ErrUnrecognizedStatement, p.input)
			}
		case stepInsertID, stepInsertUsername, stepInsertEmail:
			if err := p.doParseInsert(); err != nil {
				return p.Statement, err
			}
		case stepStatementEnd:
			if p.i < len(p.input) {
				return p.Statement, fmt.Errorf("%w: unexpected '%s'", ErrSyntax, p.peek())
			}
			return p.Statement, nil
		}
	}
}

func (p *parser) doParseInsert() error {
	token := p.pop()
	if token == "" {
		return fmt.Errorf("%w: insert expects <id> <username> <email>", ErrSyntax)
	}

	switch p.step {
	case stepInsertID:
		id, err := parseID(token)
		if err != nil {
			return err
		}
		p.RowToInsert.ID = id
		p.step = stepInsertUsername
	case stepInsertUsername:
		if len(token) > sqextralite.UsernameSize {
			return fmt.Errorf("%w: username is %d bytes, maximum is %d", sqextralite.ErrRowTooLong, len(token), sqextralite.UsernameSize)
		}
		p.RowToInsert.Username = token
		p.step = stepInsertEmail
	case stepInsertEmail:
		if len(token) > sqextralite.EmailSize {
			return fmt.Errorf("%w: email is %d bytes, maximum is %d", sqextralite.ErrRowTooLong, len(token), sqextralite.EmailSize)
		}
		p.RowToInsert.Email = token
		p.step = stepStatementEnd
	}

	return nil
}

func parseID(token string) (uint32, error) {
	if strings.HasPrefix(token, "-") {
		if _, err := strconv.ParseInt(token, 10, 64); err == nil {
			return 0, ErrNegativeID
		}
		return 0, fmt.Errorf("%w: invalid id '%s'", ErrSyntax, token)
	}

	id, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrIDOutOfRange, token)
		}
		return 0, fmt.Errorf("%w: invalid id '%s'", ErrSyntax, token)
	}
	return uint32(id), nil
}

func (p *parser) peek() string {
	peeked, _ := p.peekWithLength()
	return peeked
}

func (p *parser) pop() string {
	peeked, len := p.peekWithLength()
	p.i += len
	p.popWhitespace()
	return peeked
}

func (p *parser) popWhitespace() {
	for ; p.i < len(p.input) && p.input[p.i] == ' '; p.i++ {
	}
}

func (p *parser) peekWithLength() (string, int) {
	if p.i >= len(p.input) {
		return "", 0
	}
	end := strings.IndexByte(p.input[p.i:], ' ')
	if end < 0 {
		end = len(p.input) - p.i
	}
	return p.input[p.i : p.i+end], end
}
