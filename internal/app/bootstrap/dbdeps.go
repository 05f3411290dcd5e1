// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/seekerhub/internal/app/system/seekerapi"
)

// DBDeps holds back-end dependencies for the app.
// SeekerHub keeps no database; its backend is the upstream job-seeker API.
type DBDeps struct {
	API *seekerapi.Client
}
