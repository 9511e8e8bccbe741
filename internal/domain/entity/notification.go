package entity

import "time"

// Notification is a server-originated message addressed to one identity,
// created by backend events such as a feedback reply or an order status
// change. The web tier only flips IsRead, it never deletes notifications.
type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	RelatedID    string    `json:"relatedId,omitempty"`
	RelatedModel string    `json:"relatedModel,omitempty"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
}
