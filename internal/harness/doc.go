// Package harness runs catch-logging scenarios written in YAML.
//
// A scenario drives one or more anglers through fishing sessions against a
// fresh store and then checks the session logs and the durable records.
//
// # Scenario Format
//
//	name: two_catches
//	description: "Ivan lands a perch and a pike"
//	store: sqlite            # memory (default), sqlite or broken
//	strict: false            # return store failures instead of logging them
//	steps:
//	  - action: start
//	    angler: Ivan
//	    location: Lake Onega
//	  - action: log
//	    angler: Ivan
//	    species: Perch
//	    weight: 0.8
//	    expect: ok             # ok, not_fishing or error
//	  - action: end
//	    angler: Ivan
//	  - action: swap_store
//	    angler: Ivan
//	    store: broken          # memory, sqlite or broken
//	assertions:
//	  - type: session_count
//	    angler: Ivan
//	    count: 1
//	  - type: summary
//	    angler: Ivan
//	    count: 1
//	    weight: 0.8
//	  - type: records
//	    angler: Ivan
//	    species: [Perch]       # newest first
//
// # Assertion Types
//
//   - session_count: number of entries in the angler's session log
//   - session_weight: total weight of the session log
//   - summary: durable count and total weight from the angler's store
//   - records: species of the durable records, newest first
//
// # Deterministic Testing
//
// Every store in a run shares one step clock starting at testutil.Epoch, so
// capture times and record order are identical across runs. The trace of
// executed steps can be compared against golden files with AssertGolden.
package harness
