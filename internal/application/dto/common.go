package dto

// Pagination metadatos de página del envelope del colaborador.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Envelope cuerpo común de todas las respuestas: {status, data, message?, pagination?}.
type Envelope struct {
	Status     bool        `json:"status"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK envuelve data en una respuesta exitosa.
func OK(data interface{}) Envelope {
	return Envelope{Status: true, Data: data}
}

// Paged envuelve una lista paginada.
func Paged(data interface{}, page, limit, total int) Envelope {
	return Envelope{Status: true, Data: data, Pagination: &Pagination{Page: page, Limit: limit, Total: total}}
}

// Fail respuesta de error con la causa.
func Fail(message string) Envelope {
	return Envelope{Status: false, Message: message}
}
