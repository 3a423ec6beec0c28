package domain

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrMissingProjectID = errors.New("project ID is required")
	ErrMissingName      = errors.New("project name is required")
)
