// Package render provides output renderers for testdiff's patterns and
// report files.
package render

import "github.com/testdiff/testdiff/pkg/pattern"

// Renderer converts patterns to formatted console output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
