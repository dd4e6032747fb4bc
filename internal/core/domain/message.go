package domain

import "time"

// Message is a public guestbook entry. CreatedAt is assigned by the store on insert.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the admin dashboard summary. Revenue is a fixed placeholder.
type Stats struct {
	TotalMessages  int64 `json:"totalMessages"`
	TotalUsers     int64 `json:"totalUsers"`
	TotalMenuItems int64 `json:"totalMenuItems"`
	Revenue        int64 `json:"revenue"`
}
