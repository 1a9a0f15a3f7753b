package unit

// UnitResponse is the API shape of one organizational unit
type UnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToResponse(un Unit) UnitResponse {
	return UnitResponse{ID: un.ID, Name: un.Name}
}
