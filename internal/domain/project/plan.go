// Where: cli/internal/domain/project/plan.go
// What: Docker follow-up planning after scaffolding.
// Why: Decide build/run vs compose from flags and the files the script actually produced.
package project

// Artifacts records which container files exist in the generated project.
type Artifacts struct {
	Dockerfile  bool
	ComposeFile bool
}

// SkipReason explains why a requested Docker step will not run.
type SkipReason string

const (
	SkipNone               SkipReason = ""
	SkipDockerfileMissing  SkipReason = "Dockerfile not found in project root"
	SkipComposeSupersedes  SkipReason = "docker-compose was also requested and takes precedence"
	SkipDockerfileNeedsSQL SkipReason = "image build/run is only supported with the sqlite database"
	SkipComposeFileMissing SkipReason = "docker-compose.yml not found in project root"
	SkipComposeNeedsPG     SkipReason = "docker-compose up is only supported with the postgres database"
)

// DockerPlan is the derived set of Docker actions for one run.
type DockerPlan struct {
	BuildAndRun bool
	ComposeUp   bool

	// Populated only when the corresponding step was requested but skipped.
	BuildSkip   SkipReason
	ComposeSkip SkipReason
}

// PlanDocker computes the Docker actions. Compose supersedes a raw image
// build when both are requested.
func PlanDocker(opts InitOptions, found Artifacts) DockerPlan {
	var plan DockerPlan

	if opts.WantDockerfile {
		switch {
		case !found.Dockerfile:
			plan.BuildSkip = SkipDockerfileMissing
		case opts.WantCompose:
			plan.BuildSkip = SkipComposeSupersedes
		case opts.DB != DBSQLite:
			plan.BuildSkip = SkipDockerfileNeedsSQL
		default:
			plan.BuildAndRun = true
		}
	}

	if opts.WantCompose {
		switch {
		case !found.ComposeFile:
			plan.ComposeSkip = SkipComposeFileMissing
		case opts.DB != DBPostgres:
			plan.ComposeSkip = SkipComposeNeedsPG
		default:
			plan.ComposeUp = true
		}
	}

	return plan
}
