package models

import "strings"

// User is the profile of a signed-in platform user
type User struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	CityID            *int    `json:"city_id"`
	Region            string  `json:"region,omitempty"`
	Role              string  `json:"role,omitempty"` // client, investor, lawyer
	PasswordHash      string  `json:"-"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfileUpdate carries the editable profile fields
type ProfileUpdate struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	Region            string  `json:"region,omitempty"`
}

// Apply layers the update over a copy of the user
func (p ProfileUpdate) Apply(u User) User {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	if p.ProfilePictureURL != nil && *p.ProfilePictureURL != "" {
		url := *p.ProfilePictureURL
		u.ProfilePictureURL = &url
	}
	if p.Region != "" {
		u.Region = p.Region
	}
	return u
}
