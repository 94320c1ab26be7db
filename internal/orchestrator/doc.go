// Package orchestrator sequences one scaffolding run end to end: the
// prerequisite gate, project directory creation, base scaffold via the
// external template tool, the ordered step list, and the final git
// snapshot. Execution is strictly sequential and fail-fast: the first
// failure aborts the run with the step name attached, and nothing is
// rolled back. The declared step order is the dependency order.
package orchestrator
