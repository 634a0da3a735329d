// Command rq applies a selector path to a hiccup tree given in YAML form
// and prints the resulting sequence.
//
// Usage:
//
//	rq [-f tree.yaml] [-find] step ...
//
// Steps use the compact selector grammar, e.g.
//
//	rq -f ui.yaml ul .selected p
//	rq -f ui.yaml -find cart-item:on-remove
//
// Without -f the tree is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	rq "github.com/brosenan/reagent-query"
	"github.com/brosenan/reagent-query/hiccup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rq", flag.ContinueOnError)
	flags.SetOutput(stderr)
	file := flags.String("f", "", "YAML file holding the tree (default: stdin)")
	anywhere := flags.Bool("find", false, "search anywhere in the tree instead of starting at the root")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	tree, err := readTree(*file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "rq: %v\n", err)
		return 1
	}

	steps := make([]any, flags.NArg())
	for i, arg := range flags.Args() {
		steps[i] = arg
	}

	var results []hiccup.Value
	if *anywhere {
		results = rq.Find(tree, steps...)
	} else {
		results = rq.Query(tree, steps...)
	}

	for _, r := range results {
		switch v := r.(type) {
		case *hiccup.Element, hiccup.Seq:
			fmt.Fprint(stdout, hiccup.Print(v))
		case hiccup.Scalar:
			fmt.Fprintf(stdout, "%v\n", v.Val)
		default:
			fmt.Fprintf(stdout, "%v\n", v)
		}
	}
	return 0
}

func readTree(file string, stdin io.Reader) (hiccup.Value, error) {
	data, err := readAll(file, stdin)
	if err != nil {
		return nil, err
	}
	tree, err := hiccup.FromYAML(data)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func readAll(file string, stdin io.Reader) ([]byte, error) {
	if file == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}
