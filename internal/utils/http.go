package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is set on every JSON response.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it with the given status.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error. It returns the number of bytes written.
//
//	WriteJSON(w, models.NewDataResponse("tour", tour), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteNoContent answers 204 with an empty body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
