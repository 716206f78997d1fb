package models

import "time"

// User is the locally stored profile of an identity-provider account.
// DisplayName and Goal are sensitive (see [EncryptedFields].UserData).
type User struct {
	// UserID is the "sub" claim of the identity provider's token.
	UserID string `json:"userId"`

	DisplayName string `json:"displayName,omitempty"`
	Goal        string `json:"goal,omitempty"`

	// StartDate is the first day of the user's journey. Nil until configured.
	StartDate *time.Time `json:"startDate,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
