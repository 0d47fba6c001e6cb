package contact

// Payload is the JSON body sent to the form action.
type Payload struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}
