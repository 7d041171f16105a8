// Package model defines the domain data structures shared by the core and the
// presentation skins: encoding descriptors, catalog entries, video sessions,
// download jobs and their state machine. Values crossing goroutine boundaries
// are plain structs copied by value.
package model
