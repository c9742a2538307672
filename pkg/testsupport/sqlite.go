package testsupport

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens a named shared-cache in-memory sqlite database.
// Distinct names give each test its own database.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "artia"
	}
	return sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared&_fk=1")
}
