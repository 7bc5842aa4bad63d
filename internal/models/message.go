package models

import "time"

// Message is an inquiry sent by a renter to a property owner. Messages live
// in their own persisted collection, separate from users and properties.
type Message struct {
	ID         string    `json:"id"`
	PropertyID int       `json:"propertyId"`
	FromUserID int       `json:"fromUserId"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sentAt"`
}
