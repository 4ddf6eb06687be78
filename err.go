package tec

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "fmt"

/*
Error kind sentinels. Every error returned by a parse entry point of
this package matches exactly one of these through [errors.Is].
*/
var (
	ErrMalformedNumber        error = mkerr("malformed number")
	ErrMalformedOffset        error = mkerr("malformed offset")
	ErrMalformedGregorianText error = mkerr("malformed gregorian text")
	ErrUnderspecifiedField    error = mkerr("underspecified field")
	ErrConstraintViolation    error = mkerr("constraint violation")
	ErrGeneric                error = mkerr("generic error")
)

/*
types which implement the error interface.
*/
type (
	numberErr     struct{ e error }
	offsetErr     struct{ e error }
	gregorianErr  struct{ e error }
	underspecErr  struct{ e error }
	constraintErr struct{ e error }
	generalErr    struct{ e error }
)

func numberErrorf(m ...any) error         { return numberErr{mkerrf(m...)} }
func offsetErrorf(m ...any) error         { return offsetErr{mkerrf(m...)} }
func gregorianErrorf(m ...any) error      { return gregorianErr{mkerrf(m...)} }
func underspecErrorf(m ...any) error      { return underspecErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }

/*
GenericErrorf returns an error of the generic kind. It is meant for
collaborators of this package (e.g.: command line or I/O layers) which
need to report failures alongside the kinds produced here.
*/
func GenericErrorf(m ...any) error { return generalErr{mkerrf(m...)} }

func (r numberErr) Error() string     { return `MALFORMED NUMBER: ` + r.e.Error() }
func (r offsetErr) Error() string     { return `MALFORMED OFFSET: ` + r.e.Error() }
func (r gregorianErr) Error() string  { return `MALFORMED GREGORIAN TEXT: ` + r.e.Error() }
func (r underspecErr) Error() string  { return `UNDERSPECIFIED FIELD: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r generalErr) Error() string    { return `GENERAL ERROR: ` + r.e.Error() }

func (r numberErr) Is(target error) bool     { return target == ErrMalformedNumber }
func (r offsetErr) Is(target error) bool     { return target == ErrMalformedOffset }
func (r gregorianErr) Is(target error) bool  { return target == ErrMalformedGregorianText }
func (r underspecErr) Is(target error) bool  { return target == ErrUnderspecifiedField }
func (r constraintErr) Is(target error) bool { return target == ErrConstraintViolation }
func (r generalErr) Is(target error) bool    { return target == ErrGeneric }

func (r numberErr) Unwrap() error     { return r.e }
func (r offsetErr) Unwrap() error     { return r.e }
func (r gregorianErr) Unwrap() error  { return r.e }
func (r underspecErr) Unwrap() error  { return r.e }
func (r constraintErr) Unwrap() error { return r.e }
func (r generalErr) Unwrap() error    { return r.e }

func errorBadNumber(field, s string, err error) error {
	return numberErrorf("invalid ", field, " ", quote(s), ": ", err)
}

func errorFieldCount(field string, want, got int, s string) error {
	return underspecErrorf(field, " ", quote(s), " has ", got,
		" field(s), expected ", want)
}

func quote(s string) string { return `"` + s + `"` }

/*
mkerrf concatenates parts into a single error. Nested errors are
flattened into their message.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case fmt.Stringer:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}

	return mkerr(b.String())
}
