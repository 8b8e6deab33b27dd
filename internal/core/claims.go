package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	Email   string `json:"email"`
	PICCode string `json:"pic_code"`
	jwt.RegisteredClaims
}
