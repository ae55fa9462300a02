// Package main is a calculator for integer arithmetic expressions.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/expr"
	"github.com/alecthomas/expr/graph"
	"github.com/alecthomas/expr/lexer"
	"github.com/alecthomas/expr/repl"
)

var version string = "dev"

// CLI is the command-line interface of expr.
type CLI struct {
	Version kong.VersionFlag `help:"Show version and exit."`

	Expression string `short:"e" placeholder:"EXPR" help:"Evaluate a single expression and exit."`
	Debug      bool   `short:"d" help:"Dump the parsed tree."`
	Graph      bool   `short:"g" help:"Write the parsed tree as a Graphviz graph."`
	GraphFile  string `short:"f" default:"ast.gv" placeholder:"FILE" help:"Graphviz file to write, must end in .gv."`
	PDF        bool   `name:"pdf" help:"Render the graph to PDF with dot."`
	Grammar    bool   `help:"Print the grammar in EBNF and exit."`
	Trace      bool   `help:"Trace the parser's productions to stderr."`
	MaxNesting int    `default:"1000" help:"Maximum nesting of parentheses and exponents, 0 for unlimited."`

	LogLevel  string `default:"warn" enum:"trace,debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat string `default:"text" enum:"text,json" help:"Log format (${enum})."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("expr"),
		kong.Description(`Evaluate integer arithmetic expressions.

Supports + - % * / ^ and parentheses on 64-bit signed integers. Without --expression
an interactive session is started.`),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(YAML, "~/.config/expr.yaml", ".expr.yaml"),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		kctx.Exit(1)
	}
}

// Run expr. Every error is reported to stderr before it is returned.
func (c *CLI) Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := c.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	log := logrus.NewEntry(logger)

	if c.Grammar {
		fmt.Fprintln(stdout, expr.Grammar())
		return nil
	}

	options := []expr.Option{expr.MaxNesting(c.MaxNesting)}
	if c.Trace {
		options = append(options, expr.Trace(stderr))
	}

	if c.Expression == "" {
		r := repl.New(stdin, stdout, stderr, repl.Logger(log), repl.Debug(c.Debug), repl.ParseOptions(options...))
		if err := r.Run(ctx); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", err)
			return err
		}
		return nil
	}

	tokens, err := lexer.Lex(c.Expression)
	ast, err := expr.Parse(tokens, err, options...)
	if err != nil {
		repl.Report(stderr, err, c.Expression)
		return err
	}
	if c.Debug {
		repr.New(stdout).Println(ast)
	}
	if c.Graph {
		if err := graph.Create(ctx, ast, c.GraphFile, c.PDF); err != nil {
			log.WithField("file", c.GraphFile).WithError(err).Warn("failed to create graph")
			fmt.Fprintf(stderr, "error: failed to create graph: %s\n", err)
		} else {
			log.WithField("file", c.GraphFile).Info("wrote graph")
		}
	}
	value, err := expr.Evaluate(ast)
	if err != nil {
		repl.Report(stderr, err, c.Expression)
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}

func (c *CLI) logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return logger, nil
}
