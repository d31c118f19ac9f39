// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// torchlib_ops lists the ATen ops registered by package aten, and their implementations.
//
// Usage:
//
//	torchlib_ops [-summary] [-ops] [-op=aten::add] [-plain]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/torchlib/pkg/core/script"
	_ "github.com/gomlx/torchlib/pkg/ops/aten"
	"github.com/gomlx/torchlib/pkg/ops/registry"
	"github.com/gomlx/torchlib/pkg/ops/torchop"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagSummary = flag.Bool("summary", false, "Display a summary of the number of ops and implementations.")
	flagOps     = flag.Bool("ops", false, "Lists the registered ops, with the number of implementations per variant.")
	flagOp      = flag.String("op", "", "Lists the implementations of the given op (e.g. \"aten::add\"), "+
		"including their graphs.")
	flagPlain = flag.Bool("plain", false, "Disable colors and text styles in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'torchlib_ops -help'.", flag.Args())
		os.Exit(1)
	}
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !*flagSummary && !*flagOps && *flagOp == "" {
		*flagSummary = true
	}

	err := report(os.Stdout, torchop.Default)
	if errors.Is(err, registry.ErrNotFound) {
		klog.Errorf("%v. Use 'torchlib_ops -ops' to list the available ops.", err)
		os.Exit(1)
	}
	must.M(err)
}

// report writes the reports selected by the flags.
func report(w io.Writer, reg *torchop.Registry) error {
	if *flagSummary {
		summary(w, reg)
	}
	if *flagOps {
		listOps(w, reg)
	}
	if *flagOp != "" {
		return opDetail(w, reg, *flagOp)
	}
	return nil
}

// summary writes the total number of ops and implementations.
func summary(w io.Writer, reg *torchop.Registry) {
	perVariant := make(map[registry.Variant]int)
	perMode := make(map[script.Mode]int)
	var numImpls, numNodes int
	for _, o := range reg.All() {
		for _, v := range registry.VariantValues() {
			for _, fn := range o.Variant(v) {
				perVariant[v]++
				perMode[fn.Mode()]++
				numImpls++
				if f, ok := fn.(*script.Function); ok {
					numNodes += f.Graph().NumNodes()
				}
			}
		}
	}

	_, _ = fmt.Fprintln(w, titleStyle.Render("Summary"))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("opset", torchop.Opset.String())
	table.Row("# ops", humanize.Comma(int64(reg.Len())))
	table.Row("# implementations", humanize.Comma(int64(numImpls)))
	for _, v := range registry.VariantValues() {
		table.Row(fmt.Sprintf("# %s", v), humanize.Comma(int64(perVariant[v])))
	}
	for _, mode := range []script.Mode{script.ModeScript, script.ModeTraceOnly} {
		table.Row(fmt.Sprintf("# %s", mode), humanize.Comma(int64(perMode[mode])))
	}
	table.Row("# compiled nodes", humanize.Comma(int64(numNodes)))
	_, _ = fmt.Fprintln(w, table.Render())
}

// listOps writes one row per op, sorted by name.
func listOps(w io.Writer, reg *torchop.Registry) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Ops"))
	table := newPlainTable(lipgloss.Left, lipgloss.Right)
	headers := []string{"Op"}
	headers = append(headers, registry.VariantStrings()...)
	table.Headers(headers...)
	for _, name := range reg.SortedNames() {
		o := reg.MustLookup(name)
		row := []string{name}
		for _, v := range registry.VariantValues() {
			row = append(row, humanize.Comma(int64(len(o.Variant(v)))))
		}
		table.Row(row...)
	}
	_, _ = fmt.Fprintln(w, table.Render())
}

// opDetail writes the implementations of the op name and their graphs.
func opDetail(w io.Writer, reg *torchop.Registry, name string) error {
	o, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, titleStyle.Render(o.Name))
	table := newPlainTable(lipgloss.Left)
	table.Headers("Variant", "Function", "Mode", "Opset", "ID")
	for _, v := range registry.VariantValues() {
		for _, fn := range o.Variant(v) {
			table.Row(v.String(), fn.Name(), fn.Mode().String(), fn.Opset().String(), fn.ID().String())
		}
	}
	_, _ = fmt.Fprintln(w, table.Render())

	for _, v := range registry.VariantValues() {
		for _, fn := range o.Variant(v) {
			_, _ = fmt.Fprintf(w, "\n# %s implementation %s:\n%s\n", v, fn.Name(), describeGraph(fn))
		}
	}
	return nil
}

// describeGraph returns the listing of the graph of fn. Trace-only functions that take
// attributes can't be traced without them, and their description is returned instead.
func describeGraph(fn script.Callable) string {
	switch f := fn.(type) {
	case *script.Function:
		return f.Graph().String()
	case *script.TracedFunction:
		g, err := f.Build()
		if err != nil {
			klog.V(1).Infof("not tracing %s: %v", f.Name(), err)
			return fmt.Sprintf("(traced when used) %s", f)
		}
		return g.String()
	}
	return fn.String()
}
