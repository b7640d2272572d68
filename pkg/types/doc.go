// Package types defines the Task entity, the Category enumeration, the
// Board and TaskTable interfaces, and standard error types for the Pinboard
// storage system.
package types
