package api

import "errors"

// ErrorNoVisitor operation cannot proceed without a visitor callback.
var ErrorNoVisitor = errors.New("noVisitor")

// ErrorInvalidSettings one or more settings parameter carry an
// unacceptable value.
var ErrorInvalidSettings = errors.New("invalidSettings")
