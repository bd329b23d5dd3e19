package domain

// User-facing texts shared by the transports.
const (
	GreetingMessage        = "¡Hola desde el backend!"
	ContactThanksMessage   = "¡Gracias por escribirnos! Te responderemos dentro de las próximas 24 horas."
	ProductNotFoundMessage = "Producto no encontrado"
)
