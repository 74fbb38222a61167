// Package session implements the interactive form surface: three entry
// fields, the mutation commands, and the full listing reprinted after every
// change. All I/O goes through injected reader/writer and the Notifier and
// Confirmer collaborators, so the surface runs without a terminal in tests.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/staffbook/internal/employees"
	"github.com/mesh-intelligence/staffbook/internal/lib/logger/sl"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// Notifier reports operation outcomes to the user. The store and service
// never talk to the user directly; every failure is surfaced here.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Confirmer gates destructive actions behind an explicit yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Session is one interactive form run. The form fields and the displayed
// listing are transient; the store is the sole source of truth and the
// listing is re-read in full after every mutation.
type Session struct {
	svc     *employees.Service
	scanner *bufio.Scanner
	out     io.Writer
	log     *slog.Logger

	// Notify and Confirm default to implementations over the session's
	// own reader and writer; tests may replace them.
	Notify  Notifier
	Confirm Confirmer

	form    employees.FormInput
	listing []types.Employee
}

// New creates a Session reading commands from in and writing to out.
// A nil logger falls back to slog.Default.
func New(svc *employees.Service, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
	s.Notify = &writeNotifier{out: out}
	s.Confirm = &lineConfirmer{session: s}
	return s
}

// Run prints the initial listing and processes commands until the user
// confirms quitting or the input is exhausted.
func (s *Session) Run() error {
	s.refresh()

	for {
		fmt.Fprint(s.out, "staffbook> ")
		line, ok := s.readLine()
		if !ok {
			// Input exhausted; nothing left to confirm against.
			fmt.Fprintln(s.out)
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "add":
			s.add()
		case "update":
			s.update()
		case "delete":
			s.delete()
		case "edit":
			s.edit()
		case "select":
			s.selectRow(args)
		case "clear":
			s.form.Clear()
		case "form":
			s.printForm()
		case "list":
			s.refresh()
		case "help":
			s.printHelp()
		case "quit", "exit":
			if s.Confirm.Confirm("Do you want to quit?") {
				return nil
			}
		default:
			s.Notify.Error(fmt.Sprintf("unknown command %q; type \"help\" for the command list", cmd))
		}
	}
}

// add inserts a new record from the current form fields. On invalid input
// the form is retained and the store untouched; on any other outcome the
// form is cleared and the listing re-read.
func (s *Session) add() {
	e, err := s.svc.Add(s.form)
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		s.Notify.Error(inputText(err))
		return
	case err != nil:
		s.Notify.Error(opText(err, e.ID))
	default:
		s.Notify.Info("Employee added successfully")
	}
	s.form.Clear()
	s.refresh()
}

// update overwrites name and salary of the record named by the form's ID
// field. Post-conditions match add.
func (s *Session) update() {
	e, err := s.svc.Update(s.form)
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		s.Notify.Error(inputText(err))
		return
	case err != nil:
		s.Notify.Error(opText(err, e.ID))
	default:
		s.Notify.Info("Employee updated successfully")
	}
	s.form.Clear()
	s.refresh()
}

// delete removes the record named by the form's ID field, behind a
// confirmation gate. A declined confirmation is a silent no-op: no report,
// no refresh, fields retained.
func (s *Session) delete() {
	id, err := employees.ParseID(s.form.ID)
	if err != nil {
		s.Notify.Error(inputText(err))
		return
	}

	if !s.Confirm.Confirm(fmt.Sprintf("Are you sure you want to delete employee ID %d?", id)) {
		return
	}

	if _, err := s.svc.Delete(s.form.ID); err != nil {
		s.Notify.Error(opText(err, id))
	} else {
		s.Notify.Info("Employee deleted successfully")
	}
	s.form.Clear()
	s.refresh()
}

// edit prompts for the three field texts. Values are stored raw; nothing is
// validated until a mutation consumes them.
func (s *Session) edit() {
	s.form.ID = s.prompt("ID: ")
	s.form.Name = s.prompt("Name: ")
	s.form.Salary = s.prompt("Salary: ")
}

// selectRow copies a listed row's display text into the form fields,
// replacing whatever was previously typed. The row comes from the current
// listing, so no validation happens here.
func (s *Session) selectRow(args []string) {
	if len(args) != 1 {
		s.Notify.Error("usage: select <id>")
		return
	}
	for _, e := range s.listing {
		if strconv.Itoa(e.ID) == args[0] {
			s.form.FromRecord(e)
			s.printForm()
			return
		}
	}
	s.Notify.Error(fmt.Sprintf("employee %s is not in the listing", args[0]))
}

// refresh re-reads the full listing from the store and reprints it.
func (s *Session) refresh() {
	listing, err := s.svc.Listing()
	if err != nil {
		s.log.Error("listing refresh failed", sl.Err(err))
		s.Notify.Error("Failed to fetch records: " + err.Error())
		return
	}
	s.listing = listing
	s.printListing()
}

// printListing renders the listing as a table, ID ascending.
func (s *Session) printListing() {
	if len(s.listing) == 0 {
		fmt.Fprintln(s.out, "No employees found.")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSALARY")
	fmt.Fprintln(w, "--\t----\t------")
	for _, e := range s.listing {
		fmt.Fprintf(w, "%d\t%s\t%d\n", e.ID, e.Name, e.Salary)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Total: %d employee(s)\n", len(s.listing))
}

func (s *Session) printForm() {
	fmt.Fprintf(s.out, "ID: %s\nName: %s\nSalary: %s\n", s.form.ID, s.form.Name, s.form.Salary)
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  edit           set the ID, Name, and Salary fields
  select <id>    copy a listed row into the fields
  add            insert a new employee from the fields
  update         overwrite name and salary for the field ID
  delete         remove the employee with the field ID
  clear          clear the fields
  form           show the current fields
  list           reprint the listing
  quit           leave the session
`)
}

func (s *Session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	line, _ := s.readLine()
	return line
}

func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// inputText strips the sentinel prefix from a validation error, leaving the
// user-facing message.
func inputText(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, types.ErrInvalidInput.Error()+": "); ok {
		return cut
	}
	return msg
}

// opText phrases a store-level failure for the user.
func opText(err error, id int) string {
	switch {
	case errors.Is(err, types.ErrDuplicateID):
		return fmt.Sprintf("Employee ID %d already exists", id)
	case errors.Is(err, types.ErrNotFound):
		return fmt.Sprintf("No employee found with ID %d", id)
	default:
		return "An error occurred: " + err.Error()
	}
}
