// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// DEPTH defines the fixed search depth of an agent without a time budget.
const DEPTH = 4

// MAX_DEPTH caps iterative deepening.
const MAX_DEPTH = 32

// DURATION defines the default time budget per evaluated move.
const DURATION = 10 * time.Millisecond

// GAMES defines the default number of simulated games.
const GAMES = 1000
