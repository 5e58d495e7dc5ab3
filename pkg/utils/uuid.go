package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID devolve um identificador curto e legível. O painel usa esses
// IDs para numerar os ciclos de atualização do relatório e rastreá-los no log.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
