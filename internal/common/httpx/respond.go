package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON отдаёт JSON с нужным статусом.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteProblem — единый формат ошибок (упрощённый RFC7807 Problem+JSON).
func WriteProblem(w http.ResponseWriter, code int, typ, detail string) {
	WriteJSON(w, code, map[string]any{
		"type":   typ,                   // машинно-читаемый код ошибки
		"title":  http.StatusText(code), // человеко-читаемый заголовок
		"status": code,
		"detail": detail,
	})
}
