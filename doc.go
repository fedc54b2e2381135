/*
Package eventx is a small library for composing typed, in-process event chains.

Values are sent into an event.Sink, and flow synchronously through any Map and Filter stages attached to it, ending at an event.Iter that can be pulled like a blocking sequence.
Stages refer to each other weakly in the downstream direction, so a branch of the chain lives exactly as long as something holds on to its tail.

The subject package holds the broadcast primitive everything is built on, and can be used directly for custom stage kinds.
The cmd/eventx command is a small demonstration that pipes integers from STDIN through a configurable chain.
*/
package eventx
