package utils

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid chart ID",
			id:      "tariff-impact-chart",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "id too long (max 100 characters)",
		},
		{
			name:    "ID with invalid characters",
			id:      "chart<script>",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "ID with path traversal",
			id:      "../../../etc/passwd",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "valid ID with dots",
			id:      "chart.v2",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err, "ValidateID should return error for invalid ID")
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err, "ValidateID should not return error for valid ID")
			}
		})
	}
}

func TestValidateImageDimension(t *testing.T) {
	tests := []struct {
		name    string
		inches  float64
		wantErr bool
	}{
		{"minimum", 1, false},
		{"typical", 12, false},
		{"maximum", 30, false},
		{"too small", 0.5, true},
		{"negative", -4, true},
		{"too large", 31, true},
		{"not a number", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageDimension(tt.inches)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImageParams(t *testing.T) {
	assert.Empty(t, ValidateImageParams(12, 7))

	fieldErrors := ValidateImageParams(0, 100)
	assert.Contains(t, fieldErrors, "width")
	assert.Contains(t, fieldErrors, "height")
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"width": {"8.5"}, "height": {"tall"}}

	width, fieldErrors := ParseFloatParam(params, "width", 12, nil)
	assert.Equal(t, 8.5, width)
	assert.Empty(t, fieldErrors)

	height, fieldErrors := ParseFloatParam(params, "height", 7, fieldErrors)
	assert.Equal(t, 7.0, height)
	assert.Equal(t, []string{`Invalid field value for field "height".`}, fieldErrors["height"])

	missing, fieldErrors := ParseFloatParam(params, "depth", 3, fieldErrors)
	assert.Equal(t, 3.0, missing)
	assert.NotContains(t, fieldErrors, "depth")
}
