package entity

// Doctor doctor remitente de casos. Workplace es un descriptor derivado
// ("{tipo} - {nombre}" cuando hay nombre de clínica; si no, el tipo a secas
// o "Private Clinic" como último recurso).
type Doctor struct {
	ID         string
	FullName   string
	DoctorCode string
	Email      string
	Phone      string
	Workplace  string
}
