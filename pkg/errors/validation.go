package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxCount bounds the number of generated points.
const MaxCount = 1 << 20

// MaxCanvas bounds rendered canvas dimensions in pixels.
const MaxCanvas = 16384

// ValidateCount checks a requested point count.
func ValidateCount(n int) error {
	if n < 0 {
		return Invalid("count", "must be >= 0, got %d", n)
	}
	if n > MaxCount {
		return Invalid("count", "too large (max %d), got %d", MaxCount, n)
	}
	return nil
}

// ValidateStrength checks a jitter strength.
func ValidateStrength(s float64) error {
	if !isFinite(s) || s < 0 {
		return Invalid("strength", "must be a finite value >= 0, got %g", s)
	}
	return nil
}

// ValidateRadius checks a smoothing radius.
func ValidateRadius(r int) error {
	if r < 0 {
		return Invalid("radius", "must be >= 0, got %d", r)
	}
	return nil
}

// ValidateTolerance checks a simplification tolerance.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || tol < 0 {
		return Invalid("tolerance", "must be >= 0, got %g", tol)
	}
	return nil
}

// ValidatePadding checks a render padding fraction.
func ValidatePadding(p float64) error {
	if !isFinite(p) || p < 0 || p >= 0.5 {
		return Invalid("padding", "must be in [0, 0.5), got %g", p)
	}
	return nil
}

// ValidateCanvas checks rendered canvas dimensions.
func ValidateCanvas(w, h int) error {
	if w <= 0 || h <= 0 {
		return Invalid("canvas", "must be positive, got %dx%d", w, h)
	}
	if w > MaxCanvas || h > MaxCanvas {
		return Invalid("canvas", "too large (max %d), got %dx%d", MaxCanvas, w, h)
	}
	return nil
}

// ValidateOutputPath validates a file path for writing rendered output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path names a directory: %s", path)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
