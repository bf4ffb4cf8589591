// Package stats provides lifting telemetry (LiftingStatistics, §4.3/§9) and
// the process-wide cooperative abort flag (§5/§9).
package stats
