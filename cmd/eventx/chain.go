package main

import (
	"github.com/saylorsolutions/eventx/event"
)

// buildChain attaches the stages requested in conf to sink, and returns the tail.
func buildChain(sink *event.Sink[int], conf *config) *event.Iter[int] {
	var stage event.Event[int] = sink
	if scale := conf.scale; scale != 1 {
		stage = event.Map(stage, func(x int) int {
			return x * scale
		})
	}
	if offset := conf.offset; offset != 0 {
		stage = event.Map(stage, func(x int) int {
			return x + offset
		})
	}
	if conf.hasBelow {
		below := conf.below
		stage = stage.Filter(func(x int) bool {
			return x < below
		})
	}
	if conf.even {
		stage = stage.Filter(func(x int) bool {
			return x%2 == 0
		})
	}
	return stage.Iter()
}
