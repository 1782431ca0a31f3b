package models

// Patient is referenced by citas through its id only.
type Patient struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Edad          int    `json:"edad"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	FechaRegistro string `json:"fechaRegistro"`
}
