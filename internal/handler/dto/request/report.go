package request

import "time"

// ReportRangeQuery bounds a report with RFC 3339 timestamps, half-open.
type ReportRangeQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
