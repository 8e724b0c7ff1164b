package assets

// Names of the CSS blocks the journal wrapper can prepend.
const (
	StyleCode      = "code"
	StyleHighlight = "highlight"
	StyleTable     = "table"
)

// StyleLoader loads the CSS text of a named style block.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
