package ports

import "context"

// EmailMessage un email transaccional listo para enviar.
type EmailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// EmailSender define el puerto de salida hacia el proveedor de email
// transaccional. Cualquier adaptador (Resend, SES, mock) debe implementar esta
// interfaz. La aplicación solo conoce este contrato, no la implementación.
// Los errores del proveedor se devuelven tal cual: el caller decide cómo
// exponerlos y no hay reintento automático.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
