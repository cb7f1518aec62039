// Package password реализует хеширование и проверку паролей через bcrypt.
//
// GetHash создаёт bcrypt-хэш с собственной солью на каждый вызов.
// CompareHash и Verify сверяют введённый пароль с сохранённым хэшем.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost — стоимость bcrypt, совпадает с bcrypt.DefaultCost.
const Cost = bcrypt.DefaultCost

// MaxLength - предел bcrypt в байтах. Более длинный пароль GetHash не примет.
const MaxLength = 72

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Два вызова с одним паролем дают разные хэши за счёт соли.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Verify сообщает, подходит ли пароль к хэшу. Несовпадение и битый хэш дают false.
func Verify(originalHash, externalPassword string) bool {
	return CompareHash(originalHash, externalPassword) == nil
}
