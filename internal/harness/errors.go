package harness

import "errors"

var (
	ErrNoCases            = errors.New("no test cases to run")
	ErrInvalidExpectation = errors.New("invalid case expectation")
	ErrInvalidCasesFile   = errors.New("invalid cases file")
	ErrEmptyCaseText      = errors.New("case text is empty")
)
