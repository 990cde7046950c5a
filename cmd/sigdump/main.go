// Command sigdump resolves a method descriptor against an ad-hoc class
// registry and pretty-prints the resulting signature. Useful for
// inspecting slot accounting and never-null propagation without a full
// compilation pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quartzvm/quartz/signature"
	"github.com/quartzvm/quartz/symbol"
	"github.com/quartzvm/quartz/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA07A"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

func main() {
	var (
		desc      = flag.String("desc", "", "Method descriptor, e.g. (IDQPoint;)V")
		valueCls  = flag.String("value", "", "Comma-separated value classes to predefine as loaded")
		objectCls = flag.String("class", "", "Comma-separated object classes to predefine as loaded")
		accessing = flag.String("accessing", "Main", "Accessing class name")
	)
	flag.Parse()

	if *desc == "" {
		fmt.Fprintln(os.Stderr, "Usage: sigdump -desc <descriptor> [-value Point,Rect] [-class java/lang/String] [-accessing Main]")
		os.Exit(1)
	}

	if err := run(*desc, *valueCls, *objectCls, *accessing); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(desc, valueCls, objectCls, accessing string) error {
	reg := types.NewRegistry()
	for _, name := range splitNames(valueCls) {
		reg.DefineValueClass(symbol.Intern(name))
	}
	for _, name := range splitNames(objectCls) {
		reg.DefineObjectClass(symbol.Intern(name))
	}
	owner := reg.DefineObjectClass(symbol.Intern(accessing))

	sig, err := signature.New(owner, nil, symbol.Intern(desc), reg)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("signature " + desc))
	fmt.Printf("%s %s\n", labelStyle.Render("accessing:"), owner.Name())
	fmt.Printf("%s %d\n", labelStyle.Render("parameters:"), sig.ParameterCount())
	fmt.Printf("%s %d\n", labelStyle.Render("slots:"), sig.SlotCount())
	fmt.Println()

	for i := 0; i < sig.ParameterCount(); i++ {
		fmt.Printf("  %2d: %s\n", i, renderType(sig.TypeAt(i), sig.IsNeverNullAt(i)))
	}
	fmt.Printf("  ret: %s\n", renderType(sig.ReturnType(), sig.ReturnsNeverNull()))

	if !sig.ReturnsNeverNull() && sig.MaybeReturnsNeverNull() {
		fmt.Println(warnStyle.Render("  return class unloaded; descriptor marks it never-null"))
	}
	return nil
}

func renderType(t types.Type, neverNull bool) string {
	style := typeStyle
	if t.IsValueClass() {
		style = valueStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(t.Name()))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  kind=%s slots=%d", t.Kind(), t.SlotCount())))
	if neverNull {
		b.WriteString(valueStyle.Render("  never-null"))
	}
	if !t.IsLoaded() {
		b.WriteString(warnStyle.Render("  unloaded"))
	}
	return b.String()
}

func splitNames(list string) []string {
	if list == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
