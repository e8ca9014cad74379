package create_session

// CreateSessionRequest HTTP request model. Имя и email опциональны и
// сохраняются только в идентичности пользователя.
type CreateSessionRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
