package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . Directory

import (
	"context"

	"github.com/secmon-lab/applink/pkg/domain/model"
)

// Directory reads the reverse proxy's routing tables. Every method reports
// absent data with ok=false instead of an error; callers fall through to
// their next strategy.
type Directory interface {
	// Routers returns all HTTP routers in directory order
	Routers(ctx context.Context) ([]model.Router, bool)
	// Service looks up a single service by name
	Service(ctx context.Context, name string) (model.Service, bool)
	// Services returns the full service listing
	Services(ctx context.Context) (model.ServiceDirectory, bool)
}
