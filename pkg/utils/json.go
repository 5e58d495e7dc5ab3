package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor com indentação, para logs de depuração.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		buffer, err := jsonAPI.Marshal(in)
		if err != nil {
			return ""
		}

		raw = buffer
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
