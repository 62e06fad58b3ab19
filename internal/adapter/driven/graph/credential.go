package graph

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// NewTokenCredential selects the credential source for Graph calls. When
// tenant, client, and secret are all provided it builds an explicit
// client-secret credential; otherwise it falls back to the default Azure
// credential chain (environment, workload identity, managed identity, CLI).
func NewTokenCredential(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
	if tenantID != "" && clientID != "" && clientSecret != "" {
		cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
		if err != nil {
			return nil, &model.AuthError{Op: "create client secret credential", Err: err}
		}
		return cred, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, &model.AuthError{Op: "create default credential", Err: err}
	}
	return cred, nil
}
