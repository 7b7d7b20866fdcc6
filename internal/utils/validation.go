package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// Image dimension bounds, in inches
const (
	MinImageInches = 1.0
	MaxImageInches = 30.0
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateImageDimension validates a width or height in inches
func ValidateImageDimension(inches float64) error {
	if math.IsNaN(inches) || inches < MinImageInches || inches > MaxImageInches {
		return fmt.Errorf("must be between %g and %g inches", MinImageInches, MaxImageInches)
	}
	return nil
}

// ValidateImageParams validates the width and height of a chart image request
func ValidateImageParams(width, height float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateImageDimension(width); err != nil {
		fieldErrors["width"] = append(fieldErrors["width"], err.Error())
	}

	if err := ValidateImageDimension(height); err != nil {
		fieldErrors["height"] = append(fieldErrors["height"], err.Error())
	}

	return fieldErrors
}
