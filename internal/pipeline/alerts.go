package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Fallbacks for custom alerts that omit presentation fields.
const (
	DefaultAlertEmoji           = "ℹ️"
	DefaultAlertTextColor       = "#24292f"
	DefaultAlertBackgroundColor = "#f6f8fa"
	DefaultAlertBorderColor     = "#d0d7de"
)

// Alert validation errors.
var (
	ErrInvalidAlertName  = errors.New("invalid alert name")
	ErrInvalidAlertColor = errors.New("invalid alert color")
)

var (
	alertNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	alertColorPattern = regexp.MustCompile(`^(?:#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(?:rgb|hsl)a?\([0-9.,%/ ]+\))$`)
)

// AlertDefinition describes a typed callout rendered from a "> [!NAME]" blockquote.
// Used as an override, an empty field keeps the value it would replace.
type AlertDefinition struct {
	Name            string `yaml:"name,omitempty"`
	DisplayName     string `yaml:"displayName,omitempty"`
	Emoji           string `yaml:"emoji,omitempty"`
	TextColor       string `yaml:"textColor,omitempty"`
	BackgroundColor string `yaml:"backgroundColor,omitempty"`
	BorderColor     string `yaml:"borderColor,omitempty"`
}

// builtInAlerts is an array so callers can only ever receive copies.
var builtInAlerts = [...]AlertDefinition{
	{Name: "note", DisplayName: "NOTE", Emoji: "ℹ️", TextColor: "#1f6feb", BackgroundColor: "#eaf2f8", BorderColor: "#1f6feb"},
	{Name: "tip", DisplayName: "TIP", Emoji: "💡", TextColor: "#1a7f37", BackgroundColor: "#e6fffb", BorderColor: "#1a7f37"},
	{Name: "important", DisplayName: "IMPORTANT", Emoji: "❗", TextColor: "#8250df", BackgroundColor: "#f4ecff", BorderColor: "#8250df"},
	{Name: "warning", DisplayName: "WARNING", Emoji: "⚠️", TextColor: "#9a6700", BackgroundColor: "#faf3d1", BorderColor: "#9a6700"},
	{Name: "caution", DisplayName: "CAUTION", Emoji: "🛑", TextColor: "#cf222e", BackgroundColor: "#fdecef", BorderColor: "#cf222e"},
	{Name: "success", DisplayName: "SUCCESS", Emoji: "✅", TextColor: "#00695c", BackgroundColor: "#e0f2f1", BorderColor: "#00695c"},
	{Name: "attention", DisplayName: "ATTENTION", Emoji: "📢", TextColor: "#8a5a00", BackgroundColor: "#f6efe3", BorderColor: "#8a5a00"},
	{Name: "blocker", DisplayName: "BLOCKER", Emoji: "🚫", TextColor: "#5e35b1", BackgroundColor: "#ede7f6", BorderColor: "#5e35b1"},
	{Name: "status", DisplayName: "STATUS", Emoji: "📊", TextColor: "#495057", BackgroundColor: "#f1f3f5", BorderColor: "#495057"},
	{Name: "question", DisplayName: "QUESTION", Emoji: "❓", TextColor: "#7a6a00", BackgroundColor: "#f6f4ea", BorderColor: "#7a6a00"},
}

// BuiltInAlerts returns a fresh copy of the built-in alert catalog keyed by name.
func BuiltInAlerts() map[string]AlertDefinition {
	alerts := make(map[string]AlertDefinition, len(builtInAlerts))
	for _, def := range builtInAlerts {
		alerts[def.Name] = def
	}
	return alerts
}

// MergeAlerts overlays custom definitions on a copy of the built-in catalog.
// Keys are matched case-insensitively. Unknown keys add new alert types.
// The built-in catalog is never modified.
func MergeAlerts(custom map[string]AlertDefinition) map[string]AlertDefinition {
	merged := BuiltInAlerts()
	for key, override := range custom {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		base, ok := merged[name]
		if !ok {
			base = AlertDefinition{Name: name}
		}
		merged[name] = base.overlay(override)
	}
	return merged
}

// overlay returns a copy of d with every non-empty field of o applied.
func (d AlertDefinition) overlay(o AlertDefinition) AlertDefinition {
	if o.Name != "" {
		d.Name = o.Name
	}
	if o.DisplayName != "" {
		d.DisplayName = o.DisplayName
	}
	if o.Emoji != "" {
		d.Emoji = o.Emoji
	}
	if o.TextColor != "" {
		d.TextColor = o.TextColor
	}
	if o.BackgroundColor != "" {
		d.BackgroundColor = o.BackgroundColor
	}
	if o.BorderColor != "" {
		d.BorderColor = o.BorderColor
	}
	return d
}

func (d AlertDefinition) label(name string) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return strings.ToUpper(name)
}

func (d AlertDefinition) glyph() string {
	if d.Emoji != "" {
		return d.Emoji
	}
	return DefaultAlertEmoji
}

func (d AlertDefinition) palette() (text, background, border string) {
	text, background, border = d.TextColor, d.BackgroundColor, d.BorderColor
	if text == "" {
		text = DefaultAlertTextColor
	}
	if background == "" {
		background = DefaultAlertBackgroundColor
	}
	if border == "" {
		border = DefaultAlertBorderColor
	}
	return text, background, border
}

// Validate checks that the definition is usable under the given key.
// Empty color fields are valid and fall back to defaults.
func (d AlertDefinition) Validate(key string) error {
	if err := ValidateAlertName(key); err != nil {
		return err
	}
	colors := []struct{ field, value string }{
		{"textColor", d.TextColor},
		{"backgroundColor", d.BackgroundColor},
		{"borderColor", d.BorderColor},
	}
	for _, c := range colors {
		if c.value != "" && !alertColorPattern.MatchString(c.value) {
			return fmt.Errorf("%w: %s.%s %q (expected hex, rgb(), hsl() or a color name)", ErrInvalidAlertColor, key, c.field, c.value)
		}
	}
	return nil
}

// ValidateAlertName checks that name can be used as a tag and a CSS class.
func ValidateAlertName(name string) error {
	if !alertNamePattern.MatchString(strings.ToLower(strings.TrimSpace(name))) {
		return fmt.Errorf("%w: %q (letters, digits, '-' and '_', starting with a letter)", ErrInvalidAlertName, name)
	}
	return nil
}

// AlertNames returns the registry keys in sorted order.
func AlertNames(alerts map[string]AlertDefinition) []string {
	names := make([]string, 0, len(alerts))
	for name := range alerts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// alertTagPattern matches a leading [!NAME] tag for any registered name,
// case-insensitively. Returns nil for an empty registry.
func alertTagPattern(alerts map[string]AlertDefinition) *regexp.Regexp {
	if len(alerts) == 0 {
		return nil
	}
	names := AlertNames(alerts)
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?i)^\[!(` + strings.Join(names, "|") + `)\]`)
}
