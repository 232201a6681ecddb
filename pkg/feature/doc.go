/*
Package feature wires an Interactor and a Reducer into a screen-sized unit
of unidirectional data flow.

	action ──Send──▶ Interactor ──▶ store ──stream──▶ Reduce ──UI loop──▶ ViewState

A Feature sets its initial view state synchronously, then keeps one
goroutine subscribed to the interactor's domain stream for its whole life.
That goroutine is the only writer of the view state, and it publishes on
the UI loop, so observers always see view states in emission order no
matter how many Send calls race.
*/
package feature
