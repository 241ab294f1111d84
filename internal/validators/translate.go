package validators

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
)

const (
	MsgInvalidBody  = "El cuerpo de la solicitud no es válido"
	MsgInvalidValue = "Valor inválido"
)

var fieldMessages = map[string]string{
	"name":        "El nombre debe tener entre 2 y 100 caracteres",
	"email":       "Debe ser un email válido",
	"password":    "La contraseña debe tener al menos 6 caracteres",
	"phone":       "Debe ser un número de teléfono válido",
	"age":         "La edad debe ser un número entre 18 y 120",
	"clientId":    "El ID del cliente debe ser válido",
	"vehicle":     "El vehículo debe tener entre 2 y 100 caracteres",
	"service":     "El servicio debe ser uno de los valores permitidos",
	"status":      "El estado debe ser uno de los valores permitidos",
	"serviceDate": "La fecha del servicio debe ser una fecha válida",
	"notes":       "Las notas no pueden exceder 500 caracteres",
	"page":        "La página debe ser un número entero mayor a 0",
	"limit":       "El límite debe ser un número entero entre 1 y 100",
}

const (
	MsgServiceDateFuture = "La fecha del servicio debe ser futura"
	MsgEmailDomain       = "El dominio del email no existe"
)

// never echoed back in validation errors
var secretFields = map[string]bool{"password": true}

func Message(field string) string {
	if m, ok := fieldMessages[field]; ok {
		return m
	}
	return MsgInvalidValue
}

// Translate turns a binding error into the per-field list sent to clients.
func Translate(err error) []httpresp.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]httpresp.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()

			msg := Message(field)
			if field == "serviceDate" && fe.Tag() == "future" {
				msg = MsgServiceDateFuture
			}

			fieldErr := httpresp.FieldError{Field: field, Message: msg}
			if !secretFields[field] {
				fieldErr.Value = fe.Value()
			}
			out = append(out, fieldErr)
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []httpresp.FieldError{{
			Field:   typeErr.Field,
			Message: Message(typeErr.Field),
		}}
	}

	return []httpresp.FieldError{{Field: "body", Message: MsgInvalidBody}}
}
