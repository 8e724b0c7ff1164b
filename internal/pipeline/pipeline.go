package pipeline

// Options controls a single conversion. The zero value converts with the
// built-in alerts, pretty printing, the [code] wrapper and embedded styles.
type Options struct {
	CustomAlerts    map[string]AlertDefinition
	SkipPrettyPrint bool
	SkipCodeTags    bool

	// Highlighter colors fenced code blocks with a language tag. Nil
	// keeps code bodies verbatim.
	Highlighter *CodeHighlighter

	// Styles overrides the embedded CSS. Nil uses DefaultStylesheet.
	Styles *Stylesheet
}

// Convert turns Markdown into ServiceNow journal markup.
//
// Headers are converted before code is protected, and the block passes run
// after protected spans are restored, so header, list, quote and table
// syntax inside fenced code is still rewritten. Only inline formatting is
// kept out of code, images and links.
func Convert(markdown string, opts Options) string {
	alerts := MergeAlerts(opts.CustomAlerts)

	text := normalizeInput(markdown)
	text = ConvertHeaders(text)

	text, spans := Protect(text)
	text = formatInline(text)
	text = Restore(text, spans)

	text = convertCodeBlocks(text, opts.Highlighter)
	text = ConvertInlineCode(text)
	text = ConvertImages(text)
	text = ConvertLinks(text)
	text = ConvertHorizontalRules(text)
	text = ConvertUnorderedLists(text)
	text = ConvertOrderedLists(text)
	text = ConvertBlockquotes(text, alerts)
	text = ConvertTables(text)
	text = ConvertNewlinesOutsidePre(text)

	if !opts.SkipPrettyPrint {
		text = PrettyPrint(text)
	}
	if !opts.SkipCodeTags {
		styles := DefaultStylesheet()
		if opts.Styles != nil {
			styles = *opts.Styles
		}
		text = NewCodeTagWrapper(styles).Wrap(text, alerts)
	}
	return text
}
