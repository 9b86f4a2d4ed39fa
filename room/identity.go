package room

// VerifiedIdentity is the caller as vouched for by the identity provider.
type VerifiedIdentity struct {
	Name  string
	Email string
}
