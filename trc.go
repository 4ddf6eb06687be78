package tec

/*
trc.go implements the package tracer: a discard tracer by default, and
a zap-backed tracer for debugging parse and conversion paths.
*/

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer].
*/
type TraceRecord struct {
	Time time.Time // timestamp per the package clock
	Type EventType // kind of event
	Func string    // reporting function or method
	Args []any     // inputs and outcome
}

/*
Tracer implements an interface tracer type, which is implemented
by [ZapTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.
*/
func EnableDebug(t Tracer) {
	if t == nil {
		t = discardTracer{}
	}
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() { EnableDebug(nil) }

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{} // default
)

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord)      {}
func (discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, fn string, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(levelTracer); ok && !lt.Enabled(level) {
		return
	}

	t.Trace(TraceRecord{
		Time: now(),
		Type: level,
		Func: fn,
		Args: args,
	})
}

/*
ZapTracer is a [Tracer] which writes each [TraceRecord] to a
[zap.Logger] at debug level.
*/
type ZapTracer struct {
	mu   sync.RWMutex
	log  *zap.Logger
	mask EventType
}

/*
NewZapTracer returns an instance of *[ZapTracer] writing to log. The
events to be recorded may be narrowed by the variadic [EventType]
values; by default, [EventAll] applies.
*/
func NewZapTracer(log *zap.Logger, events ...EventType) *ZapTracer {
	mask := EventAll
	if len(events) > 0 {
		mask = EventNone
		for _, ev := range events {
			mask |= ev
		}
	}

	return &ZapTracer{
		log:  log.Named("tec"),
		mask: mask,
	}
}

/*
EnableLevel adds [EventType] ev to the events recorded by the receiver.
*/
func (r *ZapTracer) EnableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mask |= ev
}

/*
DisableLevel removes [EventType] ev from the events recorded by the
receiver.
*/
func (r *ZapTracer) DisableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mask &^= ev
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *ZapTracer) Enabled(ev EventType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mask&ev != 0
}

/*
Trace writes [TraceRecord] rec to the logger of the receiver. This
method need not be executed by the end user directly.
*/
func (r *ZapTracer) Trace(rec TraceRecord) {
	fields := make([]zap.Field, 0, len(rec.Args)+2)
	fields = append(fields,
		zap.Stringer("event", rec.Type),
		zap.Time("at", rec.Time),
	)
	for i, a := range rec.Args {
		fields = append(fields, traceField(i, a))
	}

	r.log.Debug(rec.Func, fields...)
}

func traceField(i int, a any) zap.Field {
	key := "arg" + itoa(i)
	switch tv := a.(type) {
	case error:
		return zap.NamedError(key, tv)
	case time.Time:
		return zap.Time(key, tv)
	case string:
		return zap.String(key, tv)
	case interface{ String() string }:
		return zap.Stringer(key, tv)
	}
	return zap.Any(key, a)
}
