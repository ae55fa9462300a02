// Package repl implements an interactive read-eval-print loop for arithmetic expressions.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/expr"
	"github.com/alecthomas/expr/graph"
)

// DefaultPrompt is printed before reading each line.
const DefaultPrompt = "> "

var quitKeywords = map[string]bool{"quit": true, "q": true}

// An Option configures a REPL.
type Option func(r *REPL)

// Prompt sets the prompt printed before each line.
func Prompt(prompt string) Option {
	return func(r *REPL) { r.prompt = prompt }
}

// Name sets the program name used in the greeting.
func Name(name string) Option {
	return func(r *REPL) { r.name = name }
}

// Logger sets the logger that sessions log to.
func Logger(log *logrus.Entry) Option {
	return func(r *REPL) { r.log = log }
}

// Debug enables printing of the tree for every evaluated expression.
func Debug(debug bool) Option {
	return func(r *REPL) { r.debug = debug }
}

// ParseOptions sets options passed to expr.Parse for every line.
func ParseOptions(options ...expr.Option) Option {
	return func(r *REPL) { r.parseOptions = options }
}

// REPL reads expressions line by line, evaluates them and prints the results.
//
// Lines starting with ":" are commands, see ":help".
type REPL struct {
	name    string
	prompt  string
	debug   bool
	trace   bool
	in      *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	log     *logrus.Entry
	session *Session
	last    expr.Node

	parseOptions []expr.Option

	commands *commands
}

// New creates a new REPL reading from in. Results are written to out, errors to errOut.
func New(in io.Reader, out, errOut io.Writer, options ...Option) *REPL {
	r := &REPL{
		name:   "expr",
		prompt: DefaultPrompt,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		log:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(r)
	}
	r.commands = newCommands(out, errOut)
	return r
}

// Run reads and evaluates lines until input ends or the user quits.
//
// Cancellation of ctx is checked between lines.
func (r *REPL) Run(ctx context.Context) error {
	session, err := NewSession(r.log)
	if err != nil {
		return err
	}
	r.session = session
	fmt.Fprintf(r.errOut, "%s: Exit with ctrl+d or by typing `quit' or `q'.\n", r.name)
	r.session.Log().Debug("session started")
	defer r.session.Log().Debug("session ended")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, r.prompt)
		if !r.in.Scan() {
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		switch {
		case line == "":
			continue

		case quitKeywords[line]:
			return nil

		case strings.HasPrefix(line, ":"):
			if quit := r.command(ctx, strings.Fields(line[1:])); quit {
				return nil
			}

		default:
			r.eval(ctx, line)
		}
	}
}

func (r *REPL) eval(ctx context.Context, line string) {
	options := r.parseOptions
	if r.trace {
		options = append(options[:len(options):len(options)], expr.Trace(r.out))
	}
	value, ast, err := r.session.Eval(ctx, line, options...)
	if ast != nil {
		r.last = ast
		if r.debug {
			fmt.Fprint(r.out, expr.Dump(ast))
		}
	}
	if err != nil {
		Report(r.errOut, err, line)
		return
	}
	fmt.Fprintf(r.out, "\t%d\n", value)
}

// command runs a ":" command and returns true if the REPL should exit.
func (r *REPL) command(ctx context.Context, args []string) bool {
	selected, err := r.commands.app.Parse(args)
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %s\n", err)
		return false
	}
	r.session.Log().WithField("command", selected).Debug("command")
	switch selected {
	case r.commands.quit.FullCommand():
		return true

	case r.commands.debug.FullCommand():
		r.debug = !r.debug
		fmt.Fprintf(r.out, "debug %s\n", onOff(r.debug))

	case r.commands.trace.FullCommand():
		r.trace = !r.trace
		fmt.Fprintf(r.out, "trace %s\n", onOff(r.trace))

	case r.commands.ast.FullCommand():
		if r.last == nil {
			fmt.Fprintln(r.errOut, "error: no expression has been parsed yet")
			return false
		}
		fmt.Fprint(r.out, expr.Dump(r.last))

	case r.commands.grammar.FullCommand():
		fmt.Fprintln(r.out, expr.Grammar())

	case r.commands.graph.FullCommand():
		if r.last == nil {
			fmt.Fprintln(r.errOut, "error: no expression has been parsed yet")
			return false
		}
		path := *r.commands.graphPath
		if err := graph.Create(ctx, r.last, path, *r.commands.graphPDF); err != nil {
			r.session.Log().WithField("error", err).Warn("failed to create graph")
			fmt.Fprintf(r.errOut, "error: failed to create graph: %s\n", err)
			return false
		}
		fmt.Fprintf(r.out, "wrote graph to %s\n", path)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// commands are the ":" commands understood by the REPL.
type commands struct {
	app       *kingpin.Application
	quit      *kingpin.CmdClause
	debug     *kingpin.CmdClause
	trace     *kingpin.CmdClause
	ast       *kingpin.CmdClause
	grammar   *kingpin.CmdClause
	graph     *kingpin.CmdClause
	graphPath *string
	graphPDF  *bool
}

func newCommands(out, errOut io.Writer) *commands {
	c := &commands{}
	c.app = kingpin.New(":", "Commands available in the interactive session.").
		UsageWriter(out).
		ErrorWriter(errOut).
		Terminate(nil)
	c.quit = c.app.Command("quit", "Leave the session.").Alias("q")
	c.debug = c.app.Command("debug", "Toggle printing the tree of every expression.")
	c.trace = c.app.Command("trace", "Toggle tracing of the parser's productions.")
	c.ast = c.app.Command("ast", "Print the tree of the last parsed expression.")
	c.grammar = c.app.Command("grammar", "Print the grammar in EBNF.")
	c.graph = c.app.Command("graph", "Write the tree of the last parsed expression as a Graphviz graph.")
	c.graphPath = c.graph.Arg("file", "Graph file, must end in .gv.").Required().String()
	c.graphPDF = c.graph.Flag("pdf", "Also render the graph to PDF with dot.").Default("false").Bool()
	return c
}
