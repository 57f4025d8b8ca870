package domain

import "time"

// DemoStudentEmail identifies the fallback student created on demand when no
// explicit student is selected.
const DemoStudentEmail = "demo@example.com"

type Student struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
