package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"controlastock_backend/internal/app/di"
	"controlastock_backend/internal/app/router"
	authadapters "controlastock_backend/internal/feature/auth/adapters"
	authhandler "controlastock_backend/internal/feature/auth/transport/handler"
	authusecase "controlastock_backend/internal/feature/auth/usecase"
	cephandler "controlastock_backend/internal/feature/cep/transport/handler"
	cepusecase "controlastock_backend/internal/feature/cep/usecase"
	itemadapters "controlastock_backend/internal/feature/inventory/adapters"
	itemhandler "controlastock_backend/internal/feature/inventory/transport/handler"
	itemusecase "controlastock_backend/internal/feature/inventory/usecase"
	useradapters "controlastock_backend/internal/feature/users/adapters"
	userhandler "controlastock_backend/internal/feature/users/transport/handler"
	userusecase "controlastock_backend/internal/feature/users/usecase"
	infradb "controlastock_backend/internal/platform/db"
	jwtmw "controlastock_backend/internal/platform/jwt"
	infraredis "controlastock_backend/internal/platform/redis"
	"controlastock_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to the relational token store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token signing config is loaded once and injected; nothing reads the
	// environment after this point.
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	codec := jwtmw.NewCodec(jwtCfg)

	// Repository
	authUserRepo := authadapters.NewUserGorm(db)
	tokenRepo := di.NewTokenRepository(rdb, db)
	userRepo := useradapters.NewUserGorm(db)
	itemRepo := itemadapters.NewItemGorm(db)
	cepRepo := di.NewCepRepository(rdb)

	// Usecase
	tokenSvc := authusecase.NewTokenService(codec, tokenRepo, authUserRepo)
	authUC := authusecase.NewAuthUsecase(authUserRepo, tokenSvc)
	userUC := userusecase.NewUserUsecase(userRepo)
	itemUC := itemusecase.NewItemUsecase(itemRepo)
	cepUC := cepusecase.NewCepUsecase(cepRepo, ratelimiter.NewRateLimiter(60, time.Minute))

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	itemH := itemhandler.NewItemHandler(itemUC)
	cepH := cephandler.NewCepHandler(cepUC)

	r := router.NewRouter(authH, userH, itemH, cepH, tokenSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
