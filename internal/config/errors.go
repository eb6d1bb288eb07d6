package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrParse         = errors.New("parse error")
	ErrUnknownPreset = errors.New("unknown preset")
)

// ParseError reports a malformed configuration document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

// Is makes errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownPresetError names the preset that was asked for and the valid ones.
type UnknownPresetError struct {
	Name  string
	Valid []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// Is makes errors.Is(err, ErrUnknownPreset) match.
func (e *UnknownPresetError) Is(target error) bool {
	return target == ErrUnknownPreset
}
