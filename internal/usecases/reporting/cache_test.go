package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchCache(t *testing.T) {
	t.Run("Deve devolver o valor guardado dentro do TTL", func(t *testing.T) {
		current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		cache := newFetchCache(10*time.Second, func() time.Time { return current })

		cache.put("vendas|2024-03-15", "registros")

		current = current.Add(9 * time.Second)

		value, ok := cache.get("vendas|2024-03-15")
		assert.True(t, ok)
		assert.Equal(t, "registros", value)
	})

	t.Run("Deve expirar o valor depois do TTL", func(t *testing.T) {
		current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		cache := newFetchCache(10*time.Second, func() time.Time { return current })

		cache.put("vendas|2024-03-15", "registros")

		current = current.Add(11 * time.Second)

		_, ok := cache.get("vendas|2024-03-15")
		assert.False(t, ok)
	})

	t.Run("Chaves diferentes não se misturam", func(t *testing.T) {
		current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		cache := newFetchCache(10*time.Second, func() time.Time { return current })

		cache.put("vendas|2024-03-15", "vendas do dia")
		cache.put("devolucoes|2024-03-15", "devoluções do dia")

		sales, ok := cache.get("vendas|2024-03-15")
		assert.True(t, ok)
		assert.Equal(t, "vendas do dia", sales)

		returns, ok := cache.get("devolucoes|2024-03-15")
		assert.True(t, ok)
		assert.Equal(t, "devoluções do dia", returns)
	})

	t.Run("Chave nunca gravada não existe", func(t *testing.T) {
		cache := newFetchCache(10*time.Second, nil)

		_, ok := cache.get("vendas|2024-03-15")
		assert.False(t, ok)
	})

	t.Run("Gravar de novo depois de expirar renova o prazo", func(t *testing.T) {
		current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		cache := newFetchCache(10*time.Second, func() time.Time { return current })

		cache.put("vendas|2024-03-15", "primeira leitura")

		current = current.Add(11 * time.Second)
		_, ok := cache.get("vendas|2024-03-15")
		assert.False(t, ok)

		cache.put("vendas|2024-03-15", "segunda leitura")

		current = current.Add(5 * time.Second)
		value, ok := cache.get("vendas|2024-03-15")
		assert.True(t, ok)
		assert.Equal(t, "segunda leitura", value)
	})
}
