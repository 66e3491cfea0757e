package errs

import (
	cr "github.com/cockroachdb/errors"
)

type Kind string

const (
	KindUnknown     Kind = "Unknown"
	KindNotFound    Kind = "NotFound"
	KindNotAllowed  Kind = "NotAllowed"
	KindInvalidData Kind = "InvalidData"
)

// Marker sentinels. Errors produced by NotFoundf and friends are marked with
// one of these so callers can branch with errors.Is.
var (
	ErrNotFound    = cr.New("not found")
	ErrNotAllowed  = cr.New("not allowed")
	ErrInvalidData = cr.New("invalid data")
)

func NotFoundf(format string, args ...any) error {
	return cr.Mark(cr.NewWithDepthf(1, format, args...), ErrNotFound)
}

func NotAllowedf(format string, args ...any) error {
	return cr.Mark(cr.NewWithDepthf(1, format, args...), ErrNotAllowed)
}

func InvalidDataf(format string, args ...any) error {
	return cr.Mark(cr.NewWithDepthf(1, format, args...), ErrInvalidData)
}

// AsKind marks an existing error with kind, keeping its message and chain.
func AsKind(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	switch kind {
	case KindNotFound:
		return cr.Mark(err, ErrNotFound)
	case KindNotAllowed:
		return cr.Mark(err, ErrNotAllowed)
	case KindInvalidData:
		return cr.Mark(err, ErrInvalidData)
	default:
		return err
	}
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case cr.Is(err, ErrNotFound):
		return KindNotFound
	case cr.Is(err, ErrNotAllowed):
		return KindNotAllowed
	case cr.Is(err, ErrInvalidData):
		return KindInvalidData
	default:
		return KindUnknown
	}
}
