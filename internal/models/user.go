// Package models содержит доменные структуры сервиса: пользователя, историю путешествия
// и вспомогательные типы для данных, приходящих из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя.
// Хэш пароля никогда не сериализуется в JSON.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	FullName     string    `json:"fullName" bson:"fullName"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedOn    time.Time `json:"createdOn" bson:"createdOn"`
}

// PublicUser - публичная проекция пользователя, отдаваемая после регистрации и входа.
type PublicUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Public возвращает публичные поля пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		FullName: u.FullName,
		Email:    u.Email,
	}
}

// AuthResult - результат успешной регистрации или входа.
type AuthResult struct {
	User        PublicUser
	AccessToken string
}
