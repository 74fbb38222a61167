package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// Insert creates a new employee record. The existence check and the insert
// run in one transaction so a concurrent writer cannot slip a duplicate in
// between them. Returns ErrDuplicateID if the ID is already taken.
func (s *Store) Insert(e types.Employee) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRow("SELECT 1 FROM Employees WHERE ID = ?", e.ID).Scan(&one)
	switch {
	case err == nil:
		return types.ErrDuplicateID
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("checking employee existence: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO Employees (ID, Name, Salary) VALUES (?, ?, ?)",
		e.ID, e.Name, e.Salary,
	); err != nil {
		return fmt.Errorf("inserting employee %d: %w", e.ID, err)
	}

	if err := recordEvent(tx, types.OpAdd, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing insert: %w", err)
	}
	return nil
}

// Update overwrites Name and Salary for the record with e.ID. The ID is
// never altered. Returns ErrNotFound if no record matched; nothing is
// written in that case.
func (s *Store) Update(e types.Employee) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"UPDATE Employees SET Name = ?, Salary = ? WHERE ID = ?",
		e.Name, e.Salary, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee %d: %w", e.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating employee %d: %w", e.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := recordEvent(tx, types.OpUpdate, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// Delete removes the record with the given ID.
// Returns ErrNotFound if no record matched.
func (s *Store) Delete(id int) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Read the record first so the audit event captures the values the
	// record had when it was removed.
	var e types.Employee
	err = tx.QueryRow("SELECT ID, Name, Salary FROM Employees WHERE ID = ?", id).
		Scan(&e.ID, &e.Name, &e.Salary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ErrNotFound
		}
		return fmt.Errorf("reading employee %d: %w", id, err)
	}

	if _, err := tx.Exec("DELETE FROM Employees WHERE ID = ?", id); err != nil {
		return fmt.Errorf("deleting employee %d: %w", id, err)
	}

	if err := recordEvent(tx, types.OpDelete, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// Get retrieves the record with the given ID.
// Returns ErrNotFound if no record exists with that ID.
func (s *Store) Get(id int) (types.Employee, error) {
	db, err := s.handle()
	if err != nil {
		return types.Employee{}, err
	}

	var e types.Employee
	err = db.QueryRow("SELECT ID, Name, Salary FROM Employees WHERE ID = ?", id).
		Scan(&e.ID, &e.Name, &e.Salary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Employee{}, types.ErrNotFound
		}
		return types.Employee{}, fmt.Errorf("getting employee %d: %w", id, err)
	}
	return e, nil
}

// ListAll returns every record ordered by ID ascending. The listing is
// always a full re-read; there is no cache between callers and the store.
func (s *Store) ListAll() ([]types.Employee, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT ID, Name, Salary FROM Employees ORDER BY ID")
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []types.Employee
	for rows.Next() {
		var e types.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Salary); err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return employees, nil
}
