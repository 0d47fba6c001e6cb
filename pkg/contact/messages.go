package contact

// Element identifiers the controller resolves inside the form.
const (
	ContainerID    = "contacto"
	FieldNombre    = "nombre"
	FieldEmail     = "email"
	FieldMensaje   = "mensaje"
	MessageBoxName = "form-message"
)

// User-facing strings.
const (
	MsgNameTooShort    = "Ingrese su nombre (mínimo 2 caracteres)."
	MsgInvalidEmail    = "Ingrese un correo válido."
	MsgMessageTooShort = "El mensaje debe tener al menos 10 caracteres."
	MsgSimulatedOK     = "Mensaje enviado correctamente. ¡Gracias!"
	MsgDeliveredOK     = "Mensaje enviado correctamente. Respuesta del servidor OK."
	MsgSendFailed      = "No se pudo enviar el mensaje. Intenta de nuevo más tarde."

	LabelSending = "Enviando..."
	LabelDefault = "Enviar"
)
