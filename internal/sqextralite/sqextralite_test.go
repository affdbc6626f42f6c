package sqextralite

import (
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/EthanGalbraith/sqextralite/internal/pkg/logging"
)

//go:generate mockery --name=Pager --structname=MockPager --inpackage --case=snake --testonly
//go:generate mockery --name=Parser --structname=MockParser --inpackage --case=snake --testonly

var (
	gen = newDataGen(time.Now().Unix())

	testLogger *zap.Logger
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}

	var err error
	testLogger, err = logging.New(level)
	if err != nil {
		panic(err)
	}
}

type dataGen struct {
	*gofakeit.Faker
}

func newDataGen(seed int64) *dataGen {
	g := dataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

func (g *dataGen) Rows(number int) []Row {
	rows := make([]Row, 0, number)
	for i := 0; i < number; i++ {
		rows = append(rows, g.Row())
	}
	return rows
}

func (g *dataGen) Row() Row {
	username := g.Username()
	if len(username) > UsernameSize {
		username = username[:UsernameSize]
	}
	return Row{
		ID:       g.Uint32(),
		Username: username,
		Email:    g.Email(),
	}
}

func newTestTable() *Table {
	return NewTable(testLogger, DefaultTableName, NewPager(testLogger, MaxPages))
}
