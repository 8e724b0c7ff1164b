package pipeline

import (
	"regexp"
	"strings"
	"sync"

	"github.com/alnah/go-md2sn/internal/assets"
)

var (
	prettyBlockEndPattern = regexp.MustCompile(`</h[1-6]>|</ul>|</ol>|</blockquote>|</pre>`)
	prettyBreakPattern    = regexp.MustCompile(`<br/?>|<hr/?>`)
)

// PrettyPrint inserts a newline after block-level closing tags, breaks,
// rules and list item tags so the markup is readable in the journal editor.
func PrettyPrint(text string) string {
	text = prettyBlockEndPattern.ReplaceAllString(text, "${0}\n")
	text = prettyBreakPattern.ReplaceAllString(text, "${0}\n")
	text = strings.ReplaceAll(text, "<li>", "<li>\n")
	text = strings.ReplaceAll(text, "</li>", "</li>\n")
	return text
}

// Stylesheet holds the CSS bodies the wrapper may prepend.
type Stylesheet struct {
	Code      string
	Highlight string
	Table     string
}

// LoadStylesheet reads the code, highlight and table styles from loader.
func LoadStylesheet(loader assets.StyleLoader) (Stylesheet, error) {
	var s Stylesheet
	targets := []struct {
		name string
		dst  *string
	}{
		{assets.StyleCode, &s.Code},
		{assets.StyleHighlight, &s.Highlight},
		{assets.StyleTable, &s.Table},
	}
	for _, t := range targets {
		css, err := loader.LoadStyle(t.name)
		if err != nil {
			return Stylesheet{}, err
		}
		*t.dst = css
	}
	return s, nil
}

var embeddedStylesheet = sync.OnceValues(func() (Stylesheet, error) {
	return LoadStylesheet(assets.NewEmbeddedLoader())
})

// DefaultStylesheet returns the embedded styles.
func DefaultStylesheet() Stylesheet {
	s, err := embeddedStylesheet()
	if err != nil {
		panic("pipeline: embedded styles missing: " + err.Error())
	}
	return s
}

// CodeTagWrapper prepends the CSS a converted document needs and encloses
// it in [code]...[/code] so the journal renders it as HTML.
type CodeTagWrapper struct {
	styles Stylesheet
}

// NewCodeTagWrapper creates a wrapper using the given styles.
func NewCodeTagWrapper(styles Stylesheet) *CodeTagWrapper {
	return &CodeTagWrapper{styles: styles}
}

// Wrap emits code, highlight, alert and table CSS only when the
// corresponding markup occurs in text. Alert rules use the colors in alerts.
func (w *CodeTagWrapper) Wrap(text string, alerts map[string]AlertDefinition) string {
	var css strings.Builder
	if strings.Contains(text, "<code>") {
		css.WriteString(styleBlock(w.styles.Code))
	}
	if strings.Contains(text, `<span class="highlight">`) {
		css.WriteString(styleBlock(w.styles.Highlight))
	}
	if used := usedAlerts(text, alerts); len(used) > 0 {
		css.WriteString(styleBlock(buildAlertCSS(used, alerts)))
	}
	if strings.Contains(text, `<table class="tg">`) {
		css.WriteString(styleBlock(w.styles.Table))
	}

	if css.Len() > 0 {
		text = css.String() + "\n" + text
	}
	return "[code]" + text + "[/code]"
}
