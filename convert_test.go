package md2sn

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "[code][/code]",
		},
		{
			name:  "seven hashes stay literal",
			input: "####### Seven Hashes",
			want:  "[code]####### Seven Hashes[/code]",
		},
		{
			name:  "bare fragment",
			input: "**a** and _b_",
			opts:  Options{SkipCodeTags: true},
			want:  "<strong>a</strong> and <em>b</em>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Convert(tt.input, tt.opts); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()

	input := "# Report\n\n> [!CAUTION]\n> Check `config`\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\n==done=="
	opts := Options{CustomAlerts: map[string]AlertDefinition{"deploy": {Emoji: "🚀"}}}

	first := Convert(input, opts)
	for i := 0; i < 5; i++ {
		if got := Convert(input, opts); got != first {
			t.Fatalf("Convert() run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestConvert_HighlightCode(t *testing.T) {
	t.Parallel()

	input := "```go\nfunc main() {}\n```"
	plain := Convert(input, Options{SkipCodeTags: true})
	colored := Convert(input, Options{SkipCodeTags: true, HighlightCode: true})

	if strings.Contains(plain, "style=") {
		t.Errorf("Convert() without HighlightCode = %q, want no inline styles", plain)
	}
	if !strings.Contains(colored, "style=") {
		t.Errorf("Convert() with HighlightCode = %q, want inline styles", colored)
	}
}

func TestBuiltInAlerts_Independent(t *testing.T) {
	t.Parallel()

	alerts := BuiltInAlerts()
	alerts["note"] = AlertDefinition{DisplayName: "X"}

	if got := BuiltInAlerts()["note"].DisplayName; got != "NOTE" {
		t.Errorf("BuiltInAlerts()[note].DisplayName = %q, want NOTE", got)
	}
	if got := MergeAlerts(nil)["note"].DisplayName; got != "NOTE" {
		t.Errorf("MergeAlerts(nil)[note].DisplayName = %q, want NOTE", got)
	}
}
