/*
Package ports defines the contracts between the generic Riveting layer and
feature code or external collaborators.

These interfaces decouple the core from concrete features, rendering
surfaces and I/O backends.

# Key Interfaces

  - Interactor: owns a feature's domain and handles its actions.
  - Reducer: maps a domain to a view state (pure).
  - Subject: the minimal surface the test harness drives (Interact + Subscribe).
  - Navigator / NavigationRouter: hand-off to whatever presents other screens.
  - Catalog: the data source behind the example search feature.
*/
package ports
