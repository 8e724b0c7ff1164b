// Package assets provides the CSS blocks prepended to journal output.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── StyleResolver     - combines both with custom-first fallback
//
// The built-in styles are code, highlight and table. A custom directory only
// needs the files it overrides:
//
//	{basePath}/
//	└── styles/
//	    ├── code.css
//	    ├── highlight.css
//	    └── table.css
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
