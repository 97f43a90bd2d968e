package sheet

import "errors"

// Sentinel errors returned by the generator.
//
// Underlying causes are wrapped alongside them, so both can be matched:
//
//	_, err := g.Generate(ctx)
//	if errors.Is(err, sheet.ErrGenerate) && errors.Is(err, context.Canceled) {
//	    // generation was interrupted
//	}
var (
	// ErrInvalidConfig is returned by [Config.Validate] and [New] when a
	// field is outside its allowed range.
	ErrInvalidConfig = errors.New("sheet: invalid configuration")

	// ErrGenerate is returned by [Generator.Generate] when the workbook
	// could not be built or written.
	ErrGenerate = errors.New("sheet: failed to generate workbook")
)
