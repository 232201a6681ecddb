/*
Package testsupport drives interactors deterministically in tests.

Collect subscribes to an interactor's domain stream, plays a scripted
sequence of actions and waits against it, and returns exactly the next N
emissions, or a typed failure:

	domains, err := testsupport.Collect(ctx, interactor, 3,
		testsupport.Sequence(
			testsupport.Send(search.UpdateSearchText{Text: "O"}),
			testsupport.Send(search.SubmitSearch{}),
		),
		testsupport.Timeout(2*time.Second),
	)

Failures are ErrInvalidCount (never attempted), ErrUnfulfilled (the stream
ended early) and ErrDeadlineExceeded (the timeout fired first).
*/
package testsupport
