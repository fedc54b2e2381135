/*
Package event provides composable, typed event chains.

A chain starts with a [Sink], where values are sent into it with [Sink.Send].
Stages are attached to grow the chain, and each stage observes every value its upstream forwards, in order.

	sink := event.NewSink[int]()
	tripled := event.Map(sink, func(x int) int { return 3 * x })
	small := tripled.Filter(func(x int) bool { return x < 100 })
	it := small.Iter()

	sink.Send(1)
	val, _ := it.Next() // 3

Any number of stages may be attached to the same upstream, and each will see every value independently.

# Lifetime

A stage holds its upstream strongly, while the upstream only refers to the stage weakly.
Keeping a reference to the tail of a chain keeps the whole chain alive, back to the [Sink].
Once nothing refers to a stage anymore, it's garbage collected, its upstream stops delivering to it, and the registration is pruned on a later send.
There's no other way to unsubscribe.

# Pulling values

[Iter] turns the chain into a blocking sequence.
Values that arrive while nobody is waiting are buffered, so none are ever skipped.
[Iter.Next] blocks until a value arrives, and only reports exhaustion after [Sink.Close] has been called and every buffered value has been consumed.
Without a call to Close, the sequence never ends.
*/
package event
