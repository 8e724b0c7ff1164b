package assets

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS block by name using the embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// Styles lists the embedded style names.
func Styles() []string {
	return defaultLoader.Styles()
}
