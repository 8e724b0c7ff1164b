// Package md2sn converts Markdown into ServiceNow journal markup.
//
// ServiceNow journal fields (work notes, comments) render HTML only when it
// is wrapped in [code]...[/code]. md2sn rewrites a practical Markdown subset
// into that HTML and prepends the CSS the result needs.
//
// # Quick Start
//
// The package-level Convert is a pure function:
//
//	out := md2sn.Convert("# Status\n\n> [!WARNING]\n> Deploy paused", md2sn.Options{})
//
// For logging, lint warnings and custom CSS, build a Converter:
//
//	conv, err := md2sn.NewConverter(
//	    md2sn.WithLogger(logger),
//	    md2sn.WithAssetPath("/path/to/assets"),
//	    md2sn.WithLint(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md2sn.Input{Markdown: content})
//
// # Supported Syntax
//
//   - ATX headers (# to ######)
//   - **bold**, *italic*, ***both***, ~~strike~~, ==highlight==
//   - fenced code blocks, `inline code`, links and images
//   - flat "-", "*" and "1." lists, horizontal rules
//   - blockquotes and typed alerts ("> [!NOTE]")
//   - pipe tables with a dashed separator row
//
// Everything else passes through as text. Converter.Convert can report such
// constructs as warnings.
//
// # Alerts
//
// Ten alert types are built in: note, tip, important, warning, caution,
// success, attention, blocker, status and question. Options.CustomAlerts
// overrides their fields or adds new types:
//
//	opts := md2sn.Options{CustomAlerts: map[string]md2sn.AlertDefinition{
//	    "deploy": {DisplayName: "DEPLOY", Emoji: "🚀", BackgroundColor: "#e8f5e9"},
//	}}
package md2sn
