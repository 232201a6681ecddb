/*
Package riveting is a small runtime for unidirectional data-flow screens.

A screen is split into three pieces that only talk through values:

  - an Interactor owns the business state (the "domain") in a store. It
    receives actions and mutates the domain synchronously or through
    cancelable asynchronous tasks. Every committed mutation is emitted,
    in order, to each subscriber.
  - a Reducer is a pure function from domain to view state.
  - a Feature controller subscribes to the interactor, reduces each
    emission and publishes the view state on the UI loop.

Navigation is a side channel: a router reacts to navigation events and
drives a Navigator, so the domain never holds screens.

# Packages

  - pkg/store: the domain store, async tasks and per-intent cancellation.
  - pkg/ports: Interactor, Reducer, Navigator and Catalog contracts.
  - pkg/feature and pkg/mainloop: the feature controller and its UI loop.
  - pkg/testsupport: drive an interactor with a scripted action sequence
    and collect its emissions under a timeout.
  - pkg/observability: Prometheus metrics and slog records from store
    lifecycle hooks.
  - internal/search: the superhero search screen built on all of the above.

# Usage

	interactor := search.NewInteractor(search.Loading(), memory.New(nil))
	f := search.NewFeature(interactor, language.English)
	defer f.Close()

	stop := f.Observe(func(vs search.ViewState) {
		fmt.Println(vs.Kind)
	})
	defer stop()

	f.Send(search.UpdateSearchText{Text: "man"})
	f.Send(search.SubmitSearch{})

The riveting command runs the same screen in a terminal (riveting search),
over HTTP (riveting serve) or as MCP tools (riveting mcp).
*/
package riveting
