package main

import "errors"

var (
	ErrConfig     = errors.New("load config")
	ErrLogFile    = errors.New("open log file")
	ErrOpenFilter = errors.New("open filter")
	ErrRunProgram = errors.New("run editor")
	ErrPrint      = errors.New("print filter")
)
