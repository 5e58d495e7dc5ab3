package repository

import "errors"

// ErrSourceData marca valores nulos ou ilegíveis nas views de faturamento.
// O painel prefere falhar a somar errado, então essas linhas nunca são
// descartadas em silêncio.
var ErrSourceData = errors.New("dados ilegíveis na origem")
