package md2sn

import (
	"sync"

	"github.com/alnah/go-md2sn/internal/pipeline"
)

var defaultHighlighter = sync.OnceValue(func() *pipeline.CodeHighlighter {
	return pipeline.NewCodeHighlighter(pipeline.DefaultHighlightStyle)
})

// Convert turns Markdown into ServiceNow journal markup using the embedded
// styles. It never fails: unsupported syntax passes through as text and
// custom alerts missing fields fall back to defaults.
func Convert(markdown string, opts Options) string {
	popts := pipeline.Options{
		CustomAlerts:    opts.CustomAlerts,
		SkipPrettyPrint: opts.SkipPrettyPrint,
		SkipCodeTags:    opts.SkipCodeTags,
	}
	if opts.HighlightCode {
		popts.Highlighter = defaultHighlighter()
	}
	return pipeline.Convert(markdown, popts)
}

// BuiltInAlerts returns a copy of the built-in alert catalog.
func BuiltInAlerts() map[string]AlertDefinition {
	return pipeline.BuiltInAlerts()
}

// MergeAlerts overlays custom definitions on a copy of the built-in catalog.
func MergeAlerts(custom map[string]AlertDefinition) map[string]AlertDefinition {
	return pipeline.MergeAlerts(custom)
}
