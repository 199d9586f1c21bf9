package analytics

import "errors"

var (
	// ErrMalformedDate — дата/таймстамп записи не распознан.
	ErrMalformedDate = errors.New("malformed date")
	// ErrUnknownPeriod — запрошено неизвестное имя периода.
	ErrUnknownPeriod = errors.New("unknown period")
)
