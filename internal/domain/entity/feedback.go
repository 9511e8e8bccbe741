package entity

import "time"

// Feedback is a message a visitor sent through the contact form. Replying
// from the back office creates a notification for the sender backend-side.
type Feedback struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Account is a user record as listed in the admin back office. Distinct
// from Identity: it is backend data about someone else, not the verified
// profile of the current session.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
}
