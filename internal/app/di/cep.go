package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"controlastock_backend/internal/feature/cep/usecase"
	"controlastock_backend/internal/platform/cache"
	"controlastock_backend/internal/platform/externalapi/viacep"
	infrahttp "controlastock_backend/internal/platform/http"
)

// NewCepRepository creates a fully configured ViaCEP client, wrapped in the
// Redis caching decorator when Redis is available. rdb may be nil.
func NewCepRepository(rdb *redis.Client) usecase.CepRepository {
	cfg := viacep.LoadConfig()
	client := viacep.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	if rdb == nil {
		return client
	}
	return cache.NewCachingCepRepository(rdb, 24*time.Hour, client, "cep")
}
