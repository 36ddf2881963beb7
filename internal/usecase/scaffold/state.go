// Where: cli/internal/usecase/scaffold/state.go
// What: Run phases of the scaffold orchestrator.
// Why: Make the step sequence observable in logs and tests.
package scaffold

// State is one phase of a run.
type State string

const (
	StateValidating     State = "validating"
	StateLocating       State = "locating"
	StateScaffolding    State = "scaffolding"
	StateDockerBuilding State = "docker-building"
	StateDockerRunning  State = "docker-running"
	StateDockerWaiting  State = "docker-waiting"
	StateComposeRunning State = "compose-running"
	StateDone           State = "done"
	StateFailed         State = "failed"
)
