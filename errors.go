package md2sn

import (
	"errors"

	"github.com/alnah/go-md2sn/internal/assets"
	"github.com/alnah/go-md2sn/internal/pipeline"
)

// Sentinel errors for validation and setup.
var (
	// Alert validation errors
	ErrInvalidAlertName  = pipeline.ErrInvalidAlertName
	ErrInvalidAlertColor = pipeline.ErrInvalidAlertColor

	// Asset errors
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidStyle     = assets.ErrInvalidStyle
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Preview errors
	ErrPreviewConversion = pipeline.ErrPreviewConversion
)
