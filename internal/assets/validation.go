package assets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ValidateAssetName rejects names that are empty or could leave the styles
// directory or change the file extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateStylesheet parses css and requires at least one rule, so an empty
// override cannot silently drop a style block.
func ValidateStylesheet(css string) error {
	sheet, err := parser.Parse(css)
	if err != nil {
		return err
	}
	if len(sheet.Rules) == 0 {
		return errors.New("no CSS rules")
	}
	return nil
}
