package driven

import (
	"context"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// DirectoryClient defines the driven port for reading service principal
// records and their credential sets from the directory API.
type DirectoryClient interface {
	// ListServicePrincipals returns every service principal in the tenant
	// with its attached credentials. Pagination is handled by the adapter.
	ListServicePrincipals(ctx context.Context) ([]model.ServicePrincipal, error)
}
