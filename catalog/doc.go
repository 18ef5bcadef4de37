// Package catalog provides ready-made interaction rules for common network
// processes, and a kind registry used by scenario files.
//
//   - edge_formation: unconnected pairs connect at rate.
//   - edge_decay: edges disappear at rate per unit of multiplicity.
//   - contagion: SI infection along edges at rate beta on property dim.
//   - voter: connected neighbours copy opinions at rate on property dim.
//
// All catalog rules carry an update function, so the engine refreshes only
// pairs incident to touched nodes. When several catalog rules share a model,
// pass the other rules' names in Config.Dependents.
package catalog
