package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/ptgen/forest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

func TestParseCommandOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	tokens, err := tokenize("the dog saw a cat in the park", "words")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	opts := parseOptions{start: "S", typst: true}
	if err := parseAndRender(&out, makePPGrammar(), tokens, opts); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, expected := range []string{
		"Parse tree 1:\nS\n  NP\n    Det\n      the\n",
		"Typst tree code 1:\n#tree(\"S\",\n",
		"Parse tree 2:\n",
		"Typst tree code 2:\n",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected output to contain %q", expected)
		}
	}
	if strings.Contains(s, "Parse tree 3:") {
		t.Errorf("expected exactly 2 parse trees")
	}
}

func TestParseCommandNoParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	var out bytes.Buffer
	err := parseAndRender(&out, makePPGrammar(), []string{"the", "cat"}, parseOptions{start: "S"})
	if !errors.Is(err, errNoParse) {
		t.Errorf("expected errNoParse, got %v", err)
	}
	if out.String() != "No parse tree for input\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestParseCommandPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	var out bytes.Buffer
	tokens := []string{"the", "dog", "walked"}
	g := makePPGrammar()
	if err := parseAndRender(&out, g, tokens, parseOptions{start: "S", pretty: true}); !errors.Is(err, errNoParse) {
		t.Errorf("intransitive verbs are not part of the grammar, got %v", err)
	}
	out.Reset()
	tokens = []string{"a", "dog", "walked", "a", "cat"}
	if err := parseAndRender(&out, g, tokens, parseOptions{start: "S", pretty: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Parse tree 1:\nS\n") || !strings.Contains(out.String(), "walked") {
		t.Errorf("unexpected tree view:\n%s", out.String())
	}
}

func TestTokenizers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	tokens, err := tokenize("x+(y*12)", "go")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(tokens, " ") != "x + ( y * 12 )" {
		t.Errorf("unexpected Go tokens %v", tokens)
	}
	tokens, err = tokenize("  the\tdog ", "words")
	if err != nil || strings.Join(tokens, " ") != "the dog" {
		t.Errorf("unexpected words %v (%v)", tokens, err)
	}
	if _, err = tokenize("the dog", "chars"); err == nil {
		t.Errorf("expected unknown tokenizer to be rejected")
	}
}

func TestLoadGrammarFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "expr.ebnf")
	src := `E = E "+" E | "x" .`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := loadGrammar(path, "E", true)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "expr" || !g.IsNonTerminal("E") {
		t.Errorf("unexpected grammar %s:\n%s", g.Name, g)
	}
	if _, err := loadGrammar(path, "S", true); err == nil {
		t.Errorf("expected verification to fail for undefined start symbol")
	}
	tokens, _ := tokenize("x+x+x", "go")
	var out bytes.Buffer
	if err := parseAndRender(&out, g, tokens, parseOptions{start: "E"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Parse tree 2:") || strings.Contains(out.String(), "Parse tree 3:") {
		t.Errorf("expected 2 trees for x+x+x, have\n%s", out.String())
	}
}

func TestPrintGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "np.ebnf")
	src := `NP = Det [ "big" ] N .
Det = "the" | ε .
N = "dog" .`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := loadGrammar(path, "NP", false)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := printGrammar(&out, g, true); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("\n%s", s)
	if !strings.Contains(s, "Nullable:  [Det NP·1]") {
		t.Errorf("expected Det and NP·1 to be nullable")
	}
	if !strings.Contains(s, "New productions:\n  NP → N\n") {
		t.Errorf("expected NP → N as new production")
	}
	if strings.Contains(s, "ε") {
		t.Errorf("normalized grammar should not contain epsilon")
	}
}

func TestReplCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	var out bytes.Buffer
	intp := newIntp(makePPGrammar(), "S", "words", &out)
	if quit, err := intp.Eval(":typst on"); quit || err != nil || !intp.typst {
		t.Errorf("expected :typst on to switch on markup, err = %v", err)
	}
	if _, err := intp.Eval(":typst maybe"); err == nil {
		t.Errorf("expected usage error for :typst")
	}
	if _, err := intp.Eval("the dog saw a cat with a telescope"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Typst tree code 2:") {
		t.Errorf("expected 2 trees with markup, have\n%s", out.String())
	}
	if _, err := intp.Eval(":start Unknown"); err == nil {
		t.Errorf("expected unknown start symbol to be rejected")
	}
	if _, err := intp.Eval(":start NP"); err != nil || intp.start != "NP" {
		t.Errorf("expected start symbol to be NP, err = %v", err)
	}
	out.Reset()
	if _, err := intp.Eval("a cat in the park"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Typst tree code 1:\n#tree(\"NP\",") {
		t.Errorf("expected an NP tree, have\n%s", out.String())
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected unknown command to be rejected")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to leave the REPL")
	}
}

func TestReplScriptLineNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	var out bytes.Buffer
	intp := newIntp(makePPGrammar(), "S", "words", &out)
	script := "the dog saw a cat\n\n   \n:frobnicate\n\n:typst maybe\n"
	errs := intp.evalScript(strings.NewReader(script))
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, have %v", errs)
	}
	if !strings.HasPrefix(errs[0].Error(), "line 4:") {
		t.Errorf("expected error in line 4, have %q", errs[0])
	}
	if !strings.HasPrefix(errs[1].Error(), "line 6:") {
		t.Errorf("expected error in line 6, have %q", errs[1])
	}
}

func TestStatsLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.cli")
	defer teardown()
	//
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	var out bytes.Buffer
	intp := newIntp(makePPGrammar(), "S", "words", &out)
	if _, err := intp.Eval("the dog saw a cat in the park"); err != nil {
		t.Fatal(err)
	}
	line := statsLine(intp.last, intp.parser.Stats())
	// S VP NP PP NP N park is the longest path, in the noun attachment tree
	if !strings.HasPrefix(line, "2 trees, max depth 7,") {
		t.Errorf("unexpected statistics %q", line)
	}
	if line = statsLine(nil, forest.Stats{}); line != "0 trees, max depth 0, 0 calls, 0 memo hits, 0 memo entries" {
		t.Errorf("unexpected statistics for empty forest %q", line)
	}
}
