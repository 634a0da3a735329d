package hiccup

import (
	"fmt"
	"sort"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Print renders v as an indented tree, suitable for t.Logf output and for
// eyeballing trees on the command line.
func Print(v Value) string {
	printer := tp.New()
	printValue(printer, v)
	return printer.String()
}

func printValue(printer tp.Tree, v Value) {
	switch n := v.(type) {
	case *Element:
		label := tagLabel(n)
		if len(n.Children) == 0 {
			printer.AddNode(label)
			return
		}
		branch := printer.AddBranch(label)
		for _, c := range n.Children {
			printValue(branch, c)
		}
	case Seq:
		branch := printer.AddBranch(fmt.Sprintf("(seq %d)", len(n)))
		for _, c := range n {
			printValue(branch, c)
		}
	case Scalar:
		printer.AddNode(fmt.Sprintf("%v", n.Val))
	default:
		printer.AddNode(fmt.Sprintf("%v", v))
	}
}

func tagLabel(e *Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e.CanonicalTag())
	classes := e.ClassSet()
	names := make([]string, 0, len(classes))
	for c := range classes {
		names = append(names, c)
	}
	sort.Strings(names)
	for _, c := range names {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if len(e.Attrs) > 0 {
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			if k != "class" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Attrs[k])
		}
	}
	return b.String()
}
