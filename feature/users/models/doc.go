// Package models declares the User entity and its request payloads.
//
// The entity carries both its storage mapping (GORM tags, unique indexes on name
// and email) and its validation rules (validator tags with the messages reported
// to clients). A BeforeSave hook validates every create and update before the
// statement is sent.
package models
