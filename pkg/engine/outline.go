package engine

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/document"
	"github.com/yaklabco/gobasic/pkg/metacommand"
)

// Outline summarizes the structure of a parsed module.
type Outline struct {
	Elements []OutlineElement `json:"elements"`
	Includes []Include        `json:"includes,omitempty"`
	// Dynamic is true when the last array directive seen is $DYNAMIC.
	Dynamic bool `json:"dynamic,omitempty"`
}

// OutlineElement is one scope of the module.
type OutlineElement struct {
	Kind       ast.ElementKind `json:"kind"`
	Name       string          `json:"name,omitempty"`
	Lines      int             `json:"lines"`
	Statements int             `json:"statements"`
}

// Include is a $INCLUDE directive and the 1-based line it appears on.
type Include struct {
	Line int    `json:"line"`
	File string `json:"file"`
}

// BuildOutline groups doc into its compilation unit and collects the
// metacommands of every comment. Malformed directives are skipped.
func BuildOutline(doc *document.Document) *Outline {
	out := &Outline{}
	for _, el := range doc.Unit().Elements {
		oe := OutlineElement{Kind: el.Kind, Name: el.Name, Lines: len(el.Lines)}
		for _, l := range el.Lines {
			oe.Statements += len(l.Statements)
		}
		out.Elements = append(out.Elements, oe)
	}

	for i, line := range doc.Lines() {
		for _, comment := range comments(line) {
			directives, err := metacommand.Directives(comment)
			if err != nil {
				continue
			}
			for _, d := range directives {
				switch d.Name {
				case metacommand.Include:
					out.Includes = append(out.Includes, Include{Line: i + 1, File: d.File})
				case metacommand.Dynamic:
					out.Dynamic = true
				case metacommand.Static:
					out.Dynamic = false
				}
			}
		}
	}
	return out
}

func comments(line *ast.CodeLine) []string {
	var out []string
	for _, s := range line.Statements {
		if rem, ok := s.(*ast.RemStatement); ok {
			out = append(out, rem.Text)
		}
	}
	if line.Comment != "" {
		out = append(out, line.Comment)
	}
	return out
}
