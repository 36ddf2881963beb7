// Where: cli/internal/domain/project/options.go
// What: Init options and their validation.
// Why: Hold the user's choices for one scaffold run in a single typed record.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// DBKind is the database backend the generated project is configured for.
type DBKind string

const (
	DBSQLite   DBKind = "sqlite"
	DBPostgres DBKind = "postgres"
	DBCloud    DBKind = "cloud"
)

// DBKinds lists the accepted values in display order.
var DBKinds = []DBKind{DBSQLite, DBPostgres, DBCloud}

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrUnknownDBKind       = errors.New("unknown database kind")
)

// ParseDBKind converts user input into a DBKind. Empty input means sqlite.
func ParseDBKind(raw string) (DBKind, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DBSQLite, nil
	}
	for _, kind := range DBKinds {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected sqlite, postgres or cloud)", ErrUnknownDBKind, raw)
}

// InitOptions captures everything one init run needs.
type InitOptions struct {
	ProjectName    string
	DB             DBKind
	WantDockerfile bool
	WantCompose    bool
	WantSuperuser  bool
	CloudDBURL     string
}

// Normalize trims free-text fields, puts a recognised database value in its
// canonical form and clears the cloud URL for non-cloud databases. It returns
// a copy.
func (o InitOptions) Normalize() InitOptions {
	o.ProjectName = strings.TrimSpace(o.ProjectName)
	if o.DB != "" {
		if kind, err := ParseDBKind(string(o.DB)); err == nil {
			o.DB = kind
		}
	}
	o.CloudDBURL = strings.TrimSpace(o.CloudDBURL)
	if o.DB != DBCloud {
		o.CloudDBURL = ""
	}
	return o
}

// Validate checks the invariants of a normalized InitOptions.
func (o InitOptions) Validate() error {
	if strings.TrimSpace(o.ProjectName) == "" {
		return ErrProjectNameRequired
	}
	for _, kind := range DBKinds {
		if o.DB == kind {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDBKind, o.DB)
}
