package tec

/*
constr.go contains constraint and constraint group components which
serve to validate TEC values at the call sites which require it.
Construction of TEC values never validates on its own.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

func constrain[T any](x T, cs []Constraint[T]) (err error) {
	if len(cs) > 0 {
		var group ConstraintGroup[T] = cs
		if err = group.Constrain(x); err != nil {
			debugEvent(EventConstraint, "constrain", x, err)
		}
	}
	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.

	// apply a Date constraint to DateTime values
	c := LiftConstraint(DateTime.Date, ValidDate())
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum. All of
[Year], [Month], [Day], [Time] and [Duration] qualify.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
ValidDate returns an instance of [Constraint] that rejects any [Date]
whose [Month] exceeds the [RemainderDecan] or whose [Day] exceeds the
length of its month in its year.
*/
func ValidDate() Constraint[Date] {
	return func(d Date) (err error) {
		switch n := d.month.Days(d.year); {
		case d.month > RemainderDecan:
			err = constraintViolationf("month ", d.month, " of ", d, " is beyond the remainder decan")
		case uint32(d.day) >= n:
			err = constraintViolationf("day ", d.day, " of ", d, " exceeds the ",
				int(n), " days of its month")
		}
		return
	}
}

/*
ValidTime returns an instance of [Constraint] that rejects any [Time]
of a full day ([FracsPerDay]) or more.
*/
func ValidTime() Constraint[Time] {
	return func(t Time) (err error) {
		if t >= FracsPerDay {
			err = constraintViolationf("time ", int(t), " is not within a single day")
		}
		return
	}
}

/*
DateRangeConstraint returns an instance of [Constraint] that rejects any
[Date] before min or after max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(d Date) (err error) {
		if d.Compare(min) < 0 || d.Compare(max) > 0 {
			err = constraintViolationf("date ", d, " is not in allowed range [",
				min, ", ", max, "]")
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = constraintViolationf("union failed all ", len(constraints), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

func cmpOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
