package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
)

// BindJSON decodes body into dst one field at a time and then validates the
// result, so a value of the wrong JSON type is reported next to every other
// violation instead of hiding them.
func BindJSON(body []byte, dst any) []httpresp.FieldError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &raw); err != nil || raw == nil {
		return []httpresp.FieldError{{Field: "body", Message: MsgInvalidBody}}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []httpresp.FieldError
	mistyped := map[string]bool{}

	for _, k := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{k: raw[k]})
		if err != nil {
			return []httpresp.FieldError{{Field: "body", Message: MsgInvalidBody}}
		}
		if err := json.Unmarshal(single, dst); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return []httpresp.FieldError{{Field: "body", Message: MsgInvalidBody}}
			}
			field := typeErr.Field
			if field == "" {
				field = k
			}
			mistyped[field] = true
			out = append(out, httpresp.FieldError{Field: field, Message: Message(field)})
		}
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		for _, fe := range Translate(err) {
			if !mistyped[fe.Field] {
				out = append(out, fe)
			}
		}
	}

	return out
}
