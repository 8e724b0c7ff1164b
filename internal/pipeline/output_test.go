package pipeline

import (
	"strings"
	"testing"
)

func TestPrettyPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "header", input: "<h1>T</h1>x", want: "<h1>T</h1>\nx"},
		{name: "list items", input: "<ul><li>a</li></ul>", want: "<ul><li>\na</li>\n</ul>\n"},
		{name: "ordered list", input: "<ol><li>a</li></ol>", want: "<ol><li>\na</li>\n</ol>\n"},
		{name: "breaks and rules", input: "a<br/>b<br>c<hr>", want: "a<br/>\nb<br>\nc<hr>\n"},
		{name: "blockquote and pre", input: "<blockquote>q</blockquote><pre><code>x</code></pre>", want: "<blockquote>q</blockquote>\n<pre><code>x</code></pre>\n"},
		{name: "inline markup untouched", input: "<strong>b</strong>", want: "<strong>b</strong>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PrettyPrint(tt.input); got != tt.want {
				t.Errorf("PrettyPrint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCodeTagWrapper_Wrap(t *testing.T) {
	t.Parallel()

	styles := DefaultStylesheet()
	wrapper := NewCodeTagWrapper(styles)
	alerts := BuiltInAlerts()

	t.Run("no css needed", func(t *testing.T) {
		t.Parallel()

		if got := wrapper.Wrap("plain", alerts); got != "[code]plain[/code]" {
			t.Errorf("Wrap() = %q, want %q", got, "[code]plain[/code]")
		}
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		if got := wrapper.Wrap("", alerts); got != "[code][/code]" {
			t.Errorf("Wrap() = %q, want %q", got, "[code][/code]")
		}
	})

	t.Run("code css", func(t *testing.T) {
		t.Parallel()

		want := "[code]<style type=\"text/css\">\n" +
			"code { color: crimson; background-color: #f1f1f1; padding-left: 4px; padding-right: 4px; font-size: 110%; }\n" +
			"</style>\n\n<code>x</code>[/code]"
		if got := wrapper.Wrap("<code>x</code>", alerts); got != want {
			t.Errorf("Wrap() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("only used alerts get css", func(t *testing.T) {
		t.Parallel()

		got := wrapper.Wrap(`<p class="note">ℹ️ <strong>NOTE:</strong> x</p>`, alerts)
		wantRule := ".note { color: #1f6feb; background-color: #eaf2f8; padding: 8px 12px; border-left: 4px solid #1f6feb; display: block; margin: 8px 0; }"
		if !strings.Contains(got, wantRule) {
			t.Errorf("Wrap() missing rule %q in\n%s", wantRule, got)
		}
		if strings.Contains(got, ".tip {") {
			t.Errorf("Wrap() contains css for unused alert tip:\n%s", got)
		}
		if strings.Count(got, "<style") != 1 {
			t.Errorf("Wrap() emitted %d style blocks, want 1", strings.Count(got, "<style"))
		}
	})

	t.Run("css blocks in fixed order", func(t *testing.T) {
		t.Parallel()

		text := `<table class="tg"></table><p class="tip">x</p><span class="highlight">h</span><code>c</code>`
		got := wrapper.Wrap(text, alerts)

		order := []string{"code {", ".highlight {", ".tip {", ".tg {"}
		last := -1
		for _, marker := range order {
			idx := strings.Index(got, marker)
			if idx < 0 {
				t.Fatalf("Wrap() missing %q", marker)
			}
			if idx < last {
				t.Errorf("%q appears out of order", marker)
			}
			last = idx
		}
		if !strings.HasSuffix(got, "\n"+text+"[/code]") {
			t.Errorf("Wrap() does not end with the text: %q", got)
		}
	})

	t.Run("custom styles", func(t *testing.T) {
		t.Parallel()

		custom := NewCodeTagWrapper(Stylesheet{Code: "code { color: navy; }</style>"})
		got := custom.Wrap("<code>x</code>", alerts)
		if !strings.Contains(got, `code { color: navy; }<\/style>`) {
			t.Errorf("Wrap() did not sanitize custom css: %q", got)
		}
	})
}

func TestBuildAlertCSS_StripsUnsafeValues(t *testing.T) {
	t.Parallel()

	alerts := map[string]AlertDefinition{
		"x": {TextColor: "red;}body{display:none", BackgroundColor: "#fff", BorderColor: "#000"},
	}
	got := buildAlertCSS([]string{"x"}, alerts)
	if strings.Contains(got, "red;") || strings.Contains(got, "}body{") {
		t.Errorf("buildAlertCSS() kept unsafe characters: %q", got)
	}
}

func TestLoadStylesheet(t *testing.T) {
	t.Parallel()

	s := DefaultStylesheet()
	if !strings.Contains(s.Code, "crimson") {
		t.Errorf("Code = %q, want crimson rule", s.Code)
	}
	if !strings.Contains(s.Highlight, "#fff3b0") {
		t.Errorf("Highlight = %q, want #fff3b0 rule", s.Highlight)
	}
	if !strings.Contains(s.Table, ".tg") {
		t.Errorf("Table = %q, want .tg rules", s.Table)
	}
}
