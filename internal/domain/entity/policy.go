package entity

// Policy documento de política de RRHH consultable por el módulo NLP.
type Policy struct {
	Title       string
	Slug        string
	Category    string
	Description string
	Score       float64 // relevancia de búsqueda de texto; 0 fuera de búsquedas
}
