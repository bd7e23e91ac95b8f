package service

import "time"

const (
	// DefaultTimeout covers single snapshot fetches.
	DefaultTimeout = 30 * time.Second
	// CatalogTimeout covers the capability catalog + assignment fetches.
	CatalogTimeout = 45 * time.Second
)
