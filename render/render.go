/*
Package render converts parse trees into text.

Three formats are supported:

■ Indented text: one node per line, children indented by two spaces
relative to their parent.

■ Tree markup: a nested call expression `tree("S", tree("NP", …), …)` as
understood by tree-drawing packages of the Typst typesetting system.

■ Tree views for terminals, drawn with pterm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ptgen/forest"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptgen.render'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.render")
}

// indentUnit is the indentation per tree level.
const indentUnit = "  "

// Indented renders t with one label per line, two spaces of indentation per
// tree level. Every line, including the last one, ends with a newline.
func Indented(t forest.Tree) string {
	var b strings.Builder
	indented(&b, t, "")
	return b.String()
}

func indented(b *strings.Builder, t forest.Tree, indent string) {
	if t == nil {
		return
	}
	b.WriteString(indent)
	b.WriteString(t.Label())
	b.WriteByte('\n')
	for _, ch := range t.Subtrees() {
		indented(b, ch, indent+indentUnit)
	}
}

// Typst renders t as Typst tree markup. A leaf is rendered as
//
//	tree("label")
//
// an internal node as
//
//	tree("label",
//	  child1,
//	  child2
//	)
//
// with children indented two spaces deeper than their parent. There is no
// trailing newline. Labels are not escaped.
func Typst(t forest.Tree) string {
	var b strings.Builder
	typst(&b, t, "")
	return b.String()
}

func typst(b *strings.Builder, t forest.Tree, indent string) {
	if t == nil {
		return
	}
	children := t.Subtrees()
	if len(children) == 0 {
		fmt.Fprintf(b, "%stree(\"%s\")", indent, t.Label())
		return
	}
	fmt.Fprintf(b, "%stree(\"%s\",\n", indent, t.Label())
	for i, ch := range children {
		if i > 0 {
			b.WriteString(",\n")
		}
		typst(b, ch, indent+indentUnit)
	}
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(")")
}

// Forest writes a listing of trees to w, numbering trees from 1:
//
//	Parse tree 1:
//	S
//	  NP
//	  …
//
// If withMarkup is set, every tree is followed by its Typst markup:
//
//	Typst tree code 1:
//	#tree("S", …)
//
func Forest(w io.Writer, trees []forest.Tree, withMarkup bool) error {
	for i, t := range trees {
		if _, err := fmt.Fprintf(w, "Parse tree %d:\n%s", i+1, Indented(t)); err != nil {
			return err
		}
		if !withMarkup {
			continue
		}
		if _, err := fmt.Fprintf(w, "Typst tree code %d:\n#%s\n", i+1, Typst(t)); err != nil {
			return err
		}
	}
	tracer().Debugf("rendered %d trees", len(trees))
	return nil
}
