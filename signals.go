package secureparams

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for parameter events.
var (
	SignalTransformStart    = capitan.NewSignal("secureparams.transform.start", "Transform operation beginning")
	SignalTransformComplete = capitan.NewSignal("secureparams.transform.complete", "Transform operation finished")
	SignalRestoreStart      = capitan.NewSignal("secureparams.restore.start", "Restore operation beginning")
	SignalRestoreComplete   = capitan.NewSignal("secureparams.restore.complete", "Restore operation finished")
	SignalEncodeComplete    = capitan.NewSignal("secureparams.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyParamCount  = capitan.NewIntKey("param_count")
	KeySecureCount = capitan.NewIntKey("secure_count")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitTransformStart emits an event when a transform begins.
func emitTransformStart(ctx context.Context, params, secure int) {
	capitan.Emit(ctx, SignalTransformStart,
		KeyParamCount.Field(params),
		KeySecureCount.Field(secure),
	)
}

// emitTransformComplete emits an event when a transform finishes.
func emitTransformComplete(ctx context.Context, params, secure int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyParamCount.Field(params),
		KeySecureCount.Field(secure),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalTransformComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalTransformComplete, fields...)
	}
}

// emitRestoreStart emits an event when a restore begins.
func emitRestoreStart(ctx context.Context, params, secure int) {
	capitan.Emit(ctx, SignalRestoreStart,
		KeyParamCount.Field(params),
		KeySecureCount.Field(secure),
	)
}

// emitRestoreComplete emits an event when a restore finishes.
func emitRestoreComplete(ctx context.Context, params, secure int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyParamCount.Field(params),
		KeySecureCount.Field(secure),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRestoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRestoreComplete, fields...)
	}
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
