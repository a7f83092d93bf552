package actions

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for builder, registry and codec events.
var (
	SignalCreatorBuilt   = capitan.NewSignal("actions.creator.built", "Action creator constructed")
	SignalBuildRejected  = capitan.NewSignal("actions.build.rejected", "Tag argument rejected")
	SignalTagRegistered  = capitan.NewSignal("actions.tag.registered", "Tag added to a registry")
	SignalEncodeComplete = capitan.NewSignal("actions.encode.complete", "Encode operation finished")
	SignalDecodeComplete = capitan.NewSignal("actions.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyTag         = capitan.NewStringKey("tag")
	KeyMode        = capitan.NewStringKey("mode")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyRegistered  = capitan.NewIntKey("registered")
)

// emitCreatorBuilt emits an event when a creator is constructed.
func emitCreatorBuilt(ctx context.Context, tag Tag, mode Mode) {
	capitan.Emit(ctx, SignalCreatorBuilt,
		KeyTag.Field(tag.String()),
		KeyMode.Field(string(mode)),
	)
}

// emitBuildRejected emits an error event when a tag argument is rejected.
func emitBuildRejected(ctx context.Context, err error) {
	capitan.Error(ctx, SignalBuildRejected,
		KeyError.Field(err),
	)
}

// emitTagRegistered emits an event when a registry gains a tag.
func emitTagRegistered(ctx context.Context, tag Tag, registered int) {
	capitan.Emit(ctx, SignalTagRegistered,
		KeyTag.Field(tag.String()),
		KeyRegistered.Field(registered),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType string, tag Tag, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTag.Field(tag.String()),
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

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
