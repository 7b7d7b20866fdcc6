package models

import (
	"time"

	"tariffdash.digitalaccess.org/internal/tariffs"
)

// StatusModel describes the loaded dataset
type StatusModel struct {
	tariffs.Statistics
	LastUpdated     int64  `json:"lastUpdated"`
	ReadableUpdated string `json:"readableLastUpdated"`
	Charts          int    `json:"charts"`
}

// NewStatusModel creates a StatusModel from dataset statistics and its load time
func NewStatusModel(stats tariffs.Statistics, lastUpdated time.Time, charts int) StatusModel {
	return StatusModel{
		Statistics:      stats,
		LastUpdated:     lastUpdated.UnixNano() / int64(time.Millisecond),
		ReadableUpdated: lastUpdated.Format(time.RFC3339),
		Charts:          charts,
	}
}
