package mock

import (
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

// Db is a shared in-memory SQLite database migrated with the planning schema.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens the shared database once and migrates the models in the given order.
func NewDb(name string, models []any) *Db {
	once.Do(func() {
		db = open(name, models)
	})
	return db
}

func open(name string, models []any) *Db {
	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
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
		models: make(map[string]any, len(models)),
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		table := stmt.Schema.Table
		if !dbConn.Migrator().HasTable(table) {
			panic(fmt.Sprintf("table for model %T was not created", model))
		}
		newDbMock.models[table] = model
		newDbMock.order = append(newDbMock.order, table)
	}

	return newDbMock
}

// ClearDB deletes every row, children first.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		table := d.order[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.models[table]).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the model registered for a table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
