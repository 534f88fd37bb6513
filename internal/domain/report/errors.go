package report

import "errors"

var ErrSessionNotOpen = errors.New("attendance session is not open for reporting")
