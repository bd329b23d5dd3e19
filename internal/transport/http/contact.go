package http

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxContactMessage is the longest accepted contact message, in characters.
const MaxContactMessage = 500

// ContactRequest is the body of POST /api/contacto.
type ContactRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}

// normalize trims every field and cuts the message to MaxContactMessage characters.
func (c *ContactRequest) normalize() {
	c.Nombre = strings.TrimSpace(c.Nombre)
	c.Email = strings.TrimSpace(c.Email)
	c.Mensaje = strings.TrimSpace(c.Mensaje)

	if utf8.RuneCountInString(c.Mensaje) > MaxContactMessage {
		c.Mensaje = string([]rune(c.Mensaje)[:MaxContactMessage])
	}
}

// validate returns the user-facing reason the request is rejected, or "".
func (c *ContactRequest) validate() string {
	switch {
	case c.Nombre == "":
		return "El nombre es obligatorio"
	case c.Email == "":
		return "El email es obligatorio"
	case !validEmail(c.Email):
		return "El email no es válido"
	case c.Mensaje == "":
		return "El mensaje es obligatorio"
	}
	return ""
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
