package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates missing or malformed command-line arguments.
	ErrUsage = errors.New("usage error")

	// ErrTemplateRead indicates a template file is missing or unreadable.
	ErrTemplateRead = errors.New("template read error")

	// ErrDirectoryCreate indicates the destination directory could not be created.
	ErrDirectoryCreate = errors.New("directory create error")

	// ErrWrite indicates a generated file could not be written.
	ErrWrite = errors.New("write error")

	// ErrValidation indicates a config file failed schema validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")
)
