package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/restyle/pkg/text"
)

func ExampleRewriter_ReplaceText() {
	// Create a rewriter
	rewriter := text.NewRewriter()

	// Rules run in order, each on the output of the previous one
	rules := text.MustCompile(
		text.Rule{Pattern: "text-gray-900 dark:text-white", Replace: "text-white", Literal: true},
		text.Rule{Pattern: " dark:bg-gray-800", Replace: " bg-slate-800", Literal: true},
	)

	content := strings.NewReader(`<h1 className="text-gray-900 dark:text-white p-2 dark:bg-gray-800">`)

	result, err := rewriter.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: <h1 className="text-white p-2 bg-slate-800">
	// Changes: 2
	// Was Modified: true
}

func ExampleApply_guard() {
	// The guard keeps the rule from firing on values that already carry a background
	rules := text.MustCompile(text.Rule{
		Pattern:    `(className=")([^"]*\bborder[^"]*)"(\s*/>|\s*\n)`,
		Replace:    `${1}${2} bg-slate-800 text-white"${3}`,
		Guard:      "bg-",
		GuardGroup: 2,
	})

	out, changed := text.Apply(`<input className="border" />`, rules)
	fmt.Println(out, changed)

	out, changed = text.Apply(out, rules)
	fmt.Println(out, changed)

	// Output:
	// <input className="border bg-slate-800 text-white" /> true
	// <input className="border bg-slate-800 text-white" /> false
}
