package repository

import "time"

// User is a gateway account row. The password hash never leaves the
// package; credential checks return only the role.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Sport is a row of the sports lookup table.
type Sport struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Athlete is a competitor row.
type Athlete struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
}

// Competition is an event row. Held is nil when no date was recorded.
type Competition struct {
	ID    int64      `json:"id"`
	Place string     `json:"place"`
	Held  *time.Time `json:"held"`
}

// Result is a raw row of the results join table.
type Result struct {
	ID            int64   `json:"id"`
	AthleteID     int64   `json:"athlete_id"`
	SportID       int64   `json:"sport_id"`
	CompetitionID int64   `json:"competition_id"`
	Value         float64 `json:"result"`
}

// ResultRow is a joined result record as returned by the filtered
// results listing: competition place and date, sport name, athlete
// identity, and the recorded value.
type ResultRow struct {
	Place       string     `json:"place"`
	Held        *time.Time `json:"held"`
	Sport       string     `json:"sport"`
	AthleteID   int64      `json:"athleteid"`
	AthleteName string     `json:"name"`
	Value       float64    `json:"result"`
}

// Gender is a row of the gender lookup table.
type Gender struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
