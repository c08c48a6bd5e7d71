package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"langdb/internal/engine"
	"langdb/internal/logging"
	"langdb/internal/sql"
)

const (
	prompt             = "langdb>"
	continuationPrompt = "......."
)

const helpText = `LangDB - A Simple SQL Database
Type SQL commands to execute them.
Commands end with semicolon (;)
Special commands:
  .help            Display this help message
  .exit, .quit     Exit the program
  .tables          Show all tables
  .schema <table>  Show a table definition
  .drop <table>    Remove a table and its rows
Examples:
  CREATE TABLE users (id INTEGER, name TEXT);
  INSERT INTO users VALUES (1, 'Alice');
  SELECT * FROM users;`

// Session is a line-oriented front end over one engine. Statements may span
// lines and end with ';'. Lines starting with '.' are session commands.
type Session struct {
	eng    *engine.DBEngine
	out    io.Writer
	styles styles

	// ShowBanner prints the help text when Run starts.
	ShowBanner bool

	buf strings.Builder // statement text collected so far
}

// New returns a session writing to out.
func New(eng *engine.DBEngine, out io.Writer) *Session {
	return &Session{
		eng:        eng,
		out:        out,
		styles:     newStyles(out),
		ShowBanner: true,
	}
}

// Run reads lines from in until EOF or .exit. Statement errors are printed
// and the loop continues; only a read error is returned.
func (s *Session) Run(in io.Reader) error {
	if s.ShowBanner {
		s.printHelp()
	}

	br := bufio.NewReader(in)
	for {
		s.printPrompt()

		raw, ok, err := readLine(br)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !ok {
			fmt.Fprintln(s.out, "Exiting due to EOF. Goodbye!")
			return nil
		}

		// A '.' line is a session command even in the middle of a
		// statement; the partial statement stays buffered.
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, ".") {
			if s.command(line) {
				return nil
			}
			continue
		}

		text, ok := s.feed(line)
		if !ok {
			continue
		}
		rs, err := s.exec(text)
		if err != nil {
			s.printError(err)
			continue
		}
		s.printResult(rs)
	}
}

// Import runs every statement in r before the prompt starts, printing
// results as Run does. It stops at the first failing statement.
func (s *Session) Import(name string, r io.Reader) error {
	log := logging.WithComponent("repl")

	br := bufio.NewReader(r)
	n, lineNo := 0, 0
	for {
		raw, ok, err := readLine(br)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if !ok {
			break
		}
		lineNo++

		// '.' lines are recognized as in Run, wherever they appear, and
		// are rejected.
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, ".") {
			s.buf.Reset()
			return fmt.Errorf("%s:%d: session commands are not allowed in scripts", name, lineNo)
		}

		text, ok := s.feed(line)
		if !ok {
			continue
		}
		rs, err := s.exec(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		s.printResult(rs)
		n++
	}
	if s.buf.Len() > 0 {
		s.buf.Reset()
		return fmt.Errorf("%s: unterminated statement at end of script", name)
	}

	log.Info("script imported", "file", name, "statements", n)
	return nil
}

// readLine returns the next line without its terminator. Lines have no
// length limit. ok is false once the input is exhausted.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	switch {
	case err == nil:
		return line, true, nil
	case errors.Is(err, io.EOF):
		// A final line without a newline still counts.
		return line, line != "", nil
	default:
		return "", false, err
	}
}

// feed adds line to the statement buffer. Once a line ends with ';' it
// returns the whole statement without the terminator.
func (s *Session) feed(line string) (string, bool) {
	if line == "" && s.buf.Len() == 0 {
		return "", false
	}
	if s.buf.Len() > 0 {
		s.buf.WriteByte(' ')
	}
	s.buf.WriteString(line)

	if !strings.HasSuffix(line, ";") {
		return "", false
	}
	text := strings.TrimSuffix(s.buf.String(), ";")
	s.buf.Reset()
	return text, true
}

// errParse and errExec prefix errors the way they are shown to the user.
var (
	errParse = errors.New("Parse error")
	errExec  = errors.New("Execution error")
)

func (s *Session) exec(text string) (*sql.ResultSet, error) {
	stmt, err := sql.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errParse, err)
	}

	rs, err := s.eng.Execute(stmt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errExec, err)
	}
	return rs, nil
}

// command runs a dot-command and reports whether the session should end.
func (s *Session) command(line string) bool {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case ".exit", ".quit":
		fmt.Fprintln(s.out, "Exiting LangDB. Goodbye!")
		return true

	case ".help":
		s.printHelp()

	case ".tables":
		names, err := s.eng.ListTables()
		if err != nil {
			s.printError(err)
			return false
		}
		if len(names) == 0 {
			fmt.Fprintln(s.out, "No tables defined")
			return false
		}
		fmt.Fprintln(s.out, "Tables:")
		for _, n := range names {
			fmt.Fprintf(s.out, "  %s\n", n)
		}

	case ".schema":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "Usage: .schema <table>")
			return false
		}
		schema, err := s.eng.TableSchema(args[0])
		if err != nil {
			s.printError(err)
			return false
		}
		fmt.Fprintln(s.out, FormatSchema(args[0], schema))

	case ".drop":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "Usage: .drop <table>")
			return false
		}
		if err := s.eng.DropTable(args[0]); err != nil {
			s.printError(err)
			return false
		}
		fmt.Fprintln(s.out, s.styles.success.Render(fmt.Sprintf("Table '%s' dropped", args[0])))

	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", line)
		fmt.Fprintln(s.out, s.styles.muted.Render("Type .help for usage information"))
	}
	return false
}

func (s *Session) printPrompt() {
	p := prompt
	if s.buf.Len() > 0 {
		p = continuationPrompt
	}
	fmt.Fprint(s.out, s.styles.prompt.Render(p), " ")
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, s.styles.banner.Render(helpText))
}

func (s *Session) printResult(rs *sql.ResultSet) {
	if rs.Schema.Len() > 0 {
		fmt.Fprintln(s.out, FormatResult(rs))
		return
	}
	if rs.Message != "" {
		fmt.Fprintln(s.out, s.styles.success.Render(rs.Message))
	}
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.out, s.styles.err.Render("Error: "+err.Error()))
}
