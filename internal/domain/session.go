package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de acesso ao painel. O painel usa uma
// credencial compartilhada, então o token carrega apenas o escopo.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
