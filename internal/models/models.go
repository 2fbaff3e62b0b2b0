// Package models provides the data structures used throughout the application.
package models
