/*
Package domain contains the value types shared by every Riveting feature.

It is kept pure and free of I/O, following Hexagonal Architecture principles.
Feature-specific Actions, Domains and ViewStates live with their features;
this package only holds what the generic layer needs to talk about them.

# Key Entities

  - Status: a loadable value that is loading, loaded or failed.
  - MutationEvent / EmitEvent / TaskEvent: observability payloads raised by a store.
  - LifecycleHooks: callbacks a host can register to observe a store.
*/
package domain
