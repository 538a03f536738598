package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbOnce   sync.Once
	sharedDb *Db
)

// Db is the shared in-memory database the test server and the step fixtures
// both run against. The schema is migrated once; scenarios call Reset to
// start from empty tables.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared database on first use, keyed by the Gherkin table
// names in models, and returns the same instance afterwards.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = openSharedDb(models)
	})
	return sharedDb
}

func openSharedDb(models map[string]any) *Db {
	pool, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(fmt.Sprintf("open test database: %s", err))
	}
	// A single connection pins the shared memory database for the whole run.
	pool.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: pool}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("connect test database: %s", err))
	}

	list := make([]any, 0, len(models))
	for _, model := range models {
		list = append(list, model)
	}
	if err := conn.AutoMigrate(list...); err != nil {
		panic(fmt.Sprintf("migrate test database: %s", err))
	}

	return &Db{DbConn: conn, models: models}
}

// Reset wipes every table so the next scenario starts clean.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return fmt.Errorf("reset table for %T: %w", model, err)
		}
	}
	return nil
}

// GetModel maps a Gherkin table name to the model the rows unmarshal into.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
