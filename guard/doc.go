// Package guard detects views that outlive the storage they borrow.
//
// A Source pairs caller storage with a generation counter. The owner calls
// Invalidate whenever it mutates, reuses or releases that storage. Handles
// taken from the Source remember the generation they were taken at and refuse
// to hand out their view once the generation has moved on.
//
// Each access costs one atomic load. The package is meant for tests and debug
// builds; hot paths can keep passing plain view.View values.
package guard
