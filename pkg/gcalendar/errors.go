package gcalendar

import "errors"

var (
	ErrEventNotFound          = errors.New("calendar event not found")
	ErrUnsupportedCredentials = errors.New("unsupported google credentials format")
	ErrMissingToken           = errors.New("oauth desktop credentials need a token file")
	ErrInvalidEventTime       = errors.New("calendar event has no usable start or end")
)
