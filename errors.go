package i18n

import "errors"

var (
	ErrNotInitialized = errors.New("i18n: default provider is not initialized")
	ErrEmptyLocale    = errors.New("i18n: locale cannot be empty")
	ErrInvalidLocale  = errors.New("i18n: invalid locale")
	ErrNilStore       = errors.New("i18n: store cannot be nil")
	ErrNilProvider    = errors.New("i18n: provider cannot be nil")
	ErrNilReplacer    = errors.New("i18n: replacer function cannot be nil")
)
