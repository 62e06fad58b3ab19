package model

import "time"

// CredentialKind distinguishes certificate credentials from client secrets.
type CredentialKind string

const (
	CredentialKindCertificate CredentialKind = "certificate"
	CredentialKindSecret      CredentialKind = "secret"
)

// Credential is a single key or password credential attached to a service
// principal.
type Credential struct {
	Kind        CredentialKind
	KeyID       string
	DisplayName string
	ExpiresAt   *time.Time // nil when the directory omits the expiration instant
}

// ServicePrincipal is a directory record with its attached credentials.
// Certificates precede secrets in Credentials, matching the order the
// directory API reports them.
type ServicePrincipal struct {
	DisplayName string
	Credentials []Credential
}
