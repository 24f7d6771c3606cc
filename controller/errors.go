package controller

import "errors"

var (
	ErrSectionNotFound     = errors.New("section not found")
	ErrLastSection         = errors.New("cannot delete the last section")
	ErrNoSubmitter         = errors.New("no submission endpoint configured")
	ErrInvalidCharsPerLine = errors.New("invalid characters per line")
)
