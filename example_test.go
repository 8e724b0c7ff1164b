package md2sn_test

import (
	"context"
	"fmt"
	"log"

	md2sn "github.com/alnah/go-md2sn"
)

func ExampleConvert() {
	out := md2sn.Convert("# Hello\nThis is **bold**.", md2sn.Options{})
	fmt.Println(out)
	// Output:
	// [code]<h1>Hello</h1>
	// This is <strong>bold</strong>.[/code]
}

func ExampleConvert_alert() {
	out := md2sn.Convert("> [!TIP]\n> Use the search bar.", md2sn.Options{SkipCodeTags: true})
	fmt.Println(out)
	// Output: <p class="tip">💡 <strong>TIP:</strong> Use the search bar.</p>
}

func ExampleConvert_list() {
	out := md2sn.Convert("- one\n- two", md2sn.Options{SkipCodeTags: true})
	fmt.Println(out)
	// Output:
	// <ul><li>
	// one</li>
	// <li>
	// two</li>
	// </ul>
}

func ExampleMergeAlerts() {
	alerts := md2sn.MergeAlerts(map[string]md2sn.AlertDefinition{
		"deploy": {DisplayName: "DEPLOY", Emoji: "🚀"},
	})
	fmt.Println(len(alerts), alerts["deploy"].DisplayName, alerts["note"].DisplayName)
	// Output: 11 DEPLOY NOTE
}

func ExampleConverter_Convert() {
	conv, err := md2sn.NewConverter(md2sn.WithLint(true))
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), md2sn.Input{
		Markdown: "+ plus item",
		Options:  md2sn.Options{SkipCodeTags: true},
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range result.Warnings {
		fmt.Printf("line %d: %s\n", w.Line, w.Message)
	}
	// Output: line 1: list marker '+' is not converted; use '-' or '*'
}
