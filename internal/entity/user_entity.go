package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a chat visitor identified by email. Created on first contact,
// refreshed on every subsequent contact.
type User struct {
	Id                 uuid.UUID
	Email              string
	Name               string
	Phone              string
	BusinessName       string
	Website            string
	Location           string
	IpAddress          string
	City               string
	Region             string
	Country            string
	TotalConversations int
	FirstSeen          time.Time
	LastSeen           time.Time
}
