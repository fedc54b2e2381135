/*
Package subject provides a generic one-to-many value distributor, and the building blocks that plug into it.

A [Source] holds a set of registered [Handle] values, and forwards each value it's sent to every one of them, in registration order.
Registration is non-owning by default: [Wrap] creates a [Handle] from a weak pointer, so a [Source] never keeps its listeners alive.
Once a listener has been garbage collected, its [Handle] stops delivering and is pruned on the next send.
Use [Strong] when a listener should live as long as the [Source] does.

There are a few ready-made listeners:
  - [Mapper] applies a function to each value and forwards the result to its own listeners.
  - [Filter] forwards only the values that satisfy a predicate.
  - [Receiver] buffers values in an unbounded FIFO queue for a consumer to pull with [Receiver.Next].

# Locking

Registering a listener takes an exclusive lock on the listener set, while fanning out a value takes a shared lock.
Fan-out for one [Source] is serialized, so every listener of a [Source] observes values in the same relative order.
This means that a listener must not send to, or register with, the [Source] that's currently delivering to it. Doing so will deadlock.

# Closing

A [Source] may be closed with [Source.Close], which tells every live listener implementing [Closer] that no more values are coming.
[Mapper] and [Filter] pass this along to their own listeners, and a [Receiver] reports exhaustion once its buffer is drained.
*/
package subject
