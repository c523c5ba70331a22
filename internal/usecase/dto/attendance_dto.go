package dto

import "encoding/json"

// CheckInParams carries a self check-in.
type CheckInParams struct {
	// UserID is taken from the session identity, never from the body.
	UserID string          `json:"-"`
	Meta   json.RawMessage `json:"meta"`
}

// MarkAttendanceParams carries an admin/teacher marking for one user.
type MarkAttendanceParams struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Status string `json:"status"`
	// MarkedBy is the acting user's account id.
	MarkedBy string `json:"-"`
}

// MarkBulkParams carries a bulk marking for one day.
type MarkBulkParams struct {
	UserIDs  []string `json:"userIds"`
	Date     string   `json:"date"`
	Status   string   `json:"status"`
	MarkedBy string   `json:"-"`
}

// AttendanceQuery narrows attendance listings.
type AttendanceQuery struct {
	UserID   string `query:"userId"`
	FromDate string `query:"from"`
	ToDate   string `query:"to"`
	Status   string `query:"status"`
	Limit    int    `query:"limit"`
}
