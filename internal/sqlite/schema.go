// Package sqlite implements the SQLite storage backend for staffbook.
package sqlite

// Schema DDL. Both statements are idempotent so the schema can be ensured
// on every startup without a migration path.
const (
	createEmployees = `CREATE TABLE IF NOT EXISTS Employees (
    ID INTEGER PRIMARY KEY NOT NULL,
    Name TEXT NOT NULL,
    Salary INTEGER NOT NULL
);`

	createAuditLog = `CREATE TABLE IF NOT EXISTS audit_log (
    event_id TEXT PRIMARY KEY,
    op TEXT NOT NULL,
    employee_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    salary INTEGER NOT NULL,
    occurred_at TEXT NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createEmployees,
	createAuditLog,
}
