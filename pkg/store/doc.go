/*
Package store implements the domain store: the single owner of a feature's
domain state.

A Store holds the current Domain value, applies synchronous and asynchronous
mutations through one serialization point, and broadcasts every committed
value to its subscribers. Each Subscription has its own unbounded FIFO
queue, so a slow consumer never blocks a mutation and never observes values
out of order.

# Streams

Subscribe returns a Subscription whose first value is the snapshot current
at subscribe time, followed by every later emission until the store is
closed:

	st := store.New(initial)
	sub := st.Subscribe()
	defer sub.Close()

	for d := range sub.All(ctx) {
		render(d)
	}

# Async Mutations

UpdateAsync runs an update closure on its own goroutine and returns a Task.
The commit step and Task.Cancel are serialized by the same lock, so a
canceled task never emits. Intents keeps at most one in-flight Task per
logical intent (e.g. "search").
*/
package store
