package users

// Service is a thin facade over the store. It is the extension point for
// side effects after a successful creation (notifications etc.); none
// exist today.
type Service struct {
	store   *Store
	encoder PasswordEncoder
}

// NewService creates a service over the given store and encoder.
func NewService(store *Store, encoder PasswordEncoder) *Service {
	return &Service{store: store, encoder: encoder}
}

// Create persists the user and returns the generated id.
func (s *Service) Create(nu NewUser) (string, error) {
	return s.store.Create(nu)
}

// Verify reports whether login names a registered user whose stored
// password hash matches password. It satisfies the credential-verifier
// contract of the auth middleware.
func (s *Service) Verify(login, password string) bool {
	u, ok := s.store.Find(login)
	if !ok {
		return false
	}
	return s.encoder.Compare(u.Password, password)
}
