package mock

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database for the feature suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the database once and creates a table for every model.
func NewDb(models ...any) *Db {
	once.Do(
		func() {
			db = open(models)
		},
	)

	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: map[string]any{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(fmt.Sprintf("failed to parse model %T. err: %s", model, err.Error()))
		}
		newDbMock.models[stmt.Schema.Table] = model
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to create tables. err: %s", err.Error()))
	}

	return newDbMock
}

// DB returns the gorm connection.
func (d *Db) DB() *gorm.DB {
	return d.DbConn
}

// Ping checks the underlying connection.
func (d *Db) Ping(ctx context.Context) error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ClearDB deletes every row so that each scenario starts empty.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) init() error {
	modelList := make([]any, 0, len(d.models))
	for table, model := range d.models {
		modelList = append(modelList, model)

		if err := d.DbConn.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for table, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table %s was not created", table)
		}
	}

	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[strings.TrimSpace(table)]
	return model, ok
}
