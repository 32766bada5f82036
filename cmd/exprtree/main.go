// Command exprtree reads one arithmetic expression per line from stdin and either renders each
// as a Mermaid diagram or evaluates it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/exprtree"
	"github.com/alecthomas/exprtree/internal/session"
)

type cli struct {
	app *kingpin.Application

	permissive *bool
	failFast   *bool
	ast        *bool
	trace      *bool
	summary    *bool

	render  *kingpin.CmdClause
	eval    *kingpin.CmdClause
	grammar *kingpin.CmdClause
}

func newCLI() *cli {
	app := kingpin.New("exprtree", `Parse integer arithmetic, one expression per line.

Blank lines and lines starting with "#" are ignored, and a line containing only "end" stops
processing. Operators are + - * / % and ^, all left-associative.`)
	c := &cli{app: app}
	c.permissive = app.Flag("permissive", "Do not validate parentheses or trailing tokens.").Envar("EXPRTREE_PERMISSIVE").Bool()
	c.failFast = app.Flag("fail-fast", "Stop at the first line that fails.").Envar("EXPRTREE_FAIL_FAST").Bool()
	c.ast = app.Flag("ast", "Dump each parsed tree to stderr.").Bool()
	c.trace = app.Flag("trace", "Trace the parse of each line to stderr.").Bool()
	c.summary = app.Flag("summary", "Print line and node counts to stderr when done.").Bool()
	c.render = app.Command("render", "Render each expression as a Mermaid flowchart.").Default()
	c.eval = app.Command("eval", `Evaluate each expression. "<expr> = <n>" prints 1 if <expr> equals <n>, else 0.`)
	c.grammar = app.Command("grammar", "Print the expression grammar in EBNF.")
	return c
}

func (c *cli) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}
	if command == c.grammar.FullCommand() {
		if _, err := exprtree.ParseGrammar(); err != nil {
			return err
		}
		_, err := io.WriteString(stdout, exprtree.Grammar)
		return err
	}

	mode := session.Render
	if command == c.eval.FullCommand() {
		mode = session.Evaluate
	}
	options := []session.Option{session.Filename("<stdin>")}
	if *c.permissive {
		options = append(options, session.ParserOptions(exprtree.Permissive()))
	}
	if *c.trace {
		options = append(options, session.ParserOptions(exprtree.Trace(stderr)))
	}
	if *c.failFast {
		options = append(options, session.FailFast())
	}
	if *c.ast {
		options = append(options, session.Trace(func(tree *exprtree.Tree) {
			fmt.Fprintln(stderr, repr.String(tree, repr.Indent("  ")))
		}))
	}
	stats, err := session.Run(stdin, stdout, mode, options...)
	if err != nil {
		return err
	}
	if *c.summary {
		fmt.Fprintf(stderr, "%d lines, %d skipped, %d failed, %d nodes (%d operators, %d literals)\n",
			stats.Lines, stats.Skipped, stats.Failed, stats.Nodes, stats.Operators, stats.Literals)
	}
	return nil
}

func main() {
	c := newCLI()
	err := c.run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	c.app.FatalIfError(err, "")
}
