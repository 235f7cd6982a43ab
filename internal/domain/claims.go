package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims esperadas nos tokens emitidos pelo serviço de
// autenticação (colaborador externo). Este serviço apenas valida o token
// na borda; gestão de usuários e sessões fica fora do escopo.
type Claims struct {
	Subject      string   `json:"sub"`
	Role         string   `json:"role"`
	OperationIDs []string `json:"operation_ids,omitempty"`
	jwt.RegisteredClaims
}
