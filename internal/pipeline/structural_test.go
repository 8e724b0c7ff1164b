package pipeline

import "testing"

func TestConvertHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "h1", input: "# Title", want: "<h1>Title</h1>"},
		{name: "h6", input: "###### Six", want: "<h6>Six</h6>"},
		{name: "seven hashes unchanged", input: "####### Seven Hashes", want: "####### Seven Hashes"},
		{name: "missing space unchanged", input: "#NoSpace", want: "#NoSpace"},
		{name: "empty header", input: "# ", want: "<h1></h1>"},
		{name: "multiple lines", input: "# A\ntext\n## B", want: "<h1>A</h1>\ntext\n<h2>B</h2>"},
		{name: "hash mid line unchanged", input: "issue # 12", want: "issue # 12"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertHeaders(tt.input); got != tt.want {
				t.Errorf("ConvertHeaders(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "language tag dropped", input: "```go\nfmt.Println(1)\n```", want: "<pre><code>fmt.Println(1)\n</code></pre>"},
		{name: "no language", input: "```\nplain\n```", want: "<pre><code>plain\n</code></pre>"},
		{name: "body verbatim", input: "```\n**x** <b>\n```", want: "<pre><code>**x** <b>\n</code></pre>"},
		{name: "two blocks", input: "```\na\n```\n```\nb\n```", want: "<pre><code>a\n</code></pre>\n<pre><code>b\n</code></pre>"},
		{name: "unclosed fence unchanged", input: "```\nopen", want: "```\nopen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertCodeBlocks(tt.input); got != tt.want {
				t.Errorf("ConvertCodeBlocks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		convert func(string) string
		input   string
		want    string
	}{
		{name: "inline code", convert: ConvertInlineCode, input: "use `ls -la` now", want: "use <code>ls -la</code> now"},
		{name: "empty backticks unchanged", convert: ConvertInlineCode, input: "``", want: "``"},
		{name: "image", convert: ConvertImages, input: "![logo](a.png)", want: `<img src="a.png" alt="logo">`},
		{name: "image without alt", convert: ConvertImages, input: "![](a.png)", want: `<img src="a.png" alt="">`},
		{name: "link", convert: ConvertLinks, input: "[site](https://x.y)", want: `<a href="https://x.y">site</a>`},
		{name: "link with empty label unchanged", convert: ConvertLinks, input: "[](https://x.y)", want: "[](https://x.y)"},
		{name: "dollar in link kept", convert: ConvertLinks, input: "[$1](http://a/$2)", want: `<a href="http://a/$2">$1</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.convert(tt.input); got != tt.want {
				t.Errorf("convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertHorizontalRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"---", "<hr>"},
		{"***", "<hr>"},
		{"___", "<hr>"},
		{"-----", "<hr>"},
		{"--", "--"},
		{"-*-", "-*-"},
		{"a\n----\nb", "a\n<hr>\nb"},
		{"--- text", "--- text"},
	}

	for _, tt := range tests {
		if got := ConvertHorizontalRules(tt.input); got != tt.want {
			t.Errorf("ConvertHorizontalRules(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
