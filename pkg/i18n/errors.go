package i18n

import "errors"

var (
	ErrNilStore  = errors.New("i18n: store cannot be nil")
	ErrNoSources = errors.New("i18n: at least one source is required")
)
