package http

type setModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// updatePersonaRequest leaves a field untouched when it is absent.
type updatePersonaRequest struct {
	Persona *string `json:"persona"`
	JobTask *string `json:"jobTask"`
}
