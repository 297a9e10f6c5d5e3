package models

// RoleType distinguishes the admin account from auto-provisioned student logins
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)
