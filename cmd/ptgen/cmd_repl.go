package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ptgen/forest"
	"github.com/npillmayer/ptgen/grammar"
	"github.com/npillmayer/ptgen/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	var grammarFile, start, tokenizer, initFile string
	var verify bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse sentences interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarFile, start, verify)
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			repl, err := readline.New("ptgen> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			intp := newIntp(g, start, tokenizer, os.Stdout)
			intp.repl = repl
			pterm.Info.Printfln("Welcome to ptgen, grammar is %s", g.Name)
			tracer().Infof("Quit with <ctrl>D or :quit")
			intp.loadInitFile(initFile)
			intp.REPL()
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file (default: built-in grammar)")
	cmd.Flags().StringVarP(&start, "start", "s", "S", "Start symbol")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the grammar file for start symbol")
	cmd.Flags().StringVar(&tokenizer, "tokenizer", "words", "Tokenizer [words|go]")
	cmd.Flags().StringVar(&initFile, "init", "", "File with sentences to parse initially")

	return cmd
}

// Intp is our interpreter object.
type Intp struct {
	G         *grammar.Grammar // grammar as loaded
	norm      *grammar.Grammar // epsilon-free version of G
	parser    *forest.Parser
	last      []forest.Tree // forest of the most recent sentence
	start     string
	tokenizer string
	typst     bool
	repl      *readline.Instance
	out       io.Writer
}

func newIntp(g *grammar.Grammar, start string, tokenizer string, out io.Writer) *Intp {
	norm, _ := grammar.RemoveEpsilons(g)
	return &Intp{
		G:         g,
		norm:      norm,
		parser:    forest.NewParser(norm),
		start:     start,
		tokenizer: tokenizer,
		out:       out,
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	for _, err := range intp.evalScript(f) {
		tracer().Errorf("%s: %v", filename, err)
	}
}

// evalScript evaluates every non-blank line of r. Errors carry the line
// number within r, blank lines included.
func (intp *Intp) evalScript(r io.Reader) []error {
	var errs []error
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineno, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading script: %w", err))
	}
	return errs
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval interprets a line of input. Lines starting with a colon are commands,
// everything else is a sentence to parse.
//
//	:quit            leave the REPL
//	:typst on|off    print Typst markup for every tree
//	:start <symbol>  set the start symbol
//	:grammar         print the grammar
//	:stats           print statistics of the last parse
//
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.parse(line)
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":typst":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :typst on|off")
		}
		intp.typst = args[1] == "on"
	case ":start":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :start <symbol>")
		}
		if !intp.G.IsNonTerminal(args[1]) {
			return false, fmt.Errorf("not a non-terminal of grammar %s: %s", intp.G.Name, args[1])
		}
		intp.start = args[1]
	case ":grammar":
		return false, printGrammar(intp.out, intp.G, false)
	case ":stats":
		pterm.Info.Println(statsLine(intp.last, intp.parser.Stats()))
	default:
		return false, fmt.Errorf("unknown command: %s", args[0])
	}
	return false, nil
}

func (intp *Intp) parse(sentence string) error {
	tokens, err := tokenize(sentence, intp.tokenizer)
	if err != nil {
		return err
	}
	trees, err := intp.parser.Parse(tokens, intp.start)
	if err != nil {
		return err
	}
	intp.last = trees
	tracer().Infof("%d parse trees for %q", len(trees), tokens)
	if len(trees) == 0 {
		pterm.Info.Println("No parse tree for input")
		return nil
	}
	for i, t := range trees {
		pterm.Info.Printfln("Parse tree %d:", i+1)
		view, err := render.Pretty(t)
		if err != nil {
			return err
		}
		fmt.Fprintln(intp.out, view)
		if intp.typst {
			fmt.Fprintf(intp.out, "Typst tree code %d:\n#%s\n", i+1, render.Typst(t))
		}
	}
	return nil
}
