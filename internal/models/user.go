package models

import "time"

// User represents the signed-in member's profile and plan data.
type User struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	PlanType      string    `json:"planType"`
	MemberID      string    `json:"memberId"`
	GroupID       string    `json:"groupId"`
	PlanEffective time.Time `json:"planEffective"`
}

// EmptyUser returns the sentinel profile meaning "no user loaded". All string
// fields are empty; PlanEffective is the construction time.
func EmptyUser() User {
	return User{PlanEffective: time.Now()}
}

// IsEmpty reports whether the profile is the empty sentinel.
func (u User) IsEmpty() bool {
	return u.FirstName == "" && u.LastName == "" && u.Email == "" &&
		u.PlanType == "" && u.MemberID == "" && u.GroupID == ""
}
