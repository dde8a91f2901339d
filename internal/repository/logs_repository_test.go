//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildLogFilter(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options match everything",
			opts:     LogQueryOptions{},
			expected: bson.M{},
		},
		{
			name: "request id and level",
			opts: LogQueryOptions{RequestID: "req-1", Level: "error"},
			expected: bson.M{
				"request_id": "req-1",
				"level":      "error",
			},
		},
		{
			name: "user audit trail",
			opts: LogQueryOptions{UserID: "user-1"},
			expected: bson.M{
				"user_id": "user-1",
			},
		},
		{
			name: "path is a case-insensitive regex",
			opts: LogQueryOptions{Path: "/api/shopping-lists"},
			expected: bson.M{
				"path": bson.M{"$regex": "/api/shopping-lists", "$options": "i"},
			},
		},
		{
			name: "time range",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{
				"timestamp": bson.M{"$gte": start, "$lte": end},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildLogFilter(tt.opts))
		})
	}
}
