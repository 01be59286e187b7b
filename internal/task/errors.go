package task

import "errors"

// ErrTaskNotFound covers both a genuinely absent task and one owned by a
// different user. The two cases are indistinguishable on purpose so the API
// never leaks the existence of other users' data.
var ErrTaskNotFound = errors.New("task not found")
