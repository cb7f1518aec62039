// Package response содержит типы и функции для формирования единых JSON-ответов.
// Каждый ответ несёт флаг error и, как правило, человеко-читаемое сообщение.
package response

// ErrorResponse - тело ответа с ошибкой. Используется в аннотациях @Failure.
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"All fields are required"`
}

// MessageResponse - успешный ответ без данных.
type MessageResponse struct {
	Error   bool   `json:"error" example:"false"`
	Message string `json:"message" example:"Update Successful"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Error:   true,
		Message: msg,
	}
}

// OK возвращает успешный MessageResponse.
func OK(msg string) MessageResponse {
	return MessageResponse{
		Message: msg,
	}
}
