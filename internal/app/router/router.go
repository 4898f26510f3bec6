// Package router assembles the Gin route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "controlastock_backend/internal/feature/auth/transport/handler"
	cephandler "controlastock_backend/internal/feature/cep/transport/handler"
	itemhandler "controlastock_backend/internal/feature/inventory/transport/handler"
	userhandler "controlastock_backend/internal/feature/users/transport/handler"
	"controlastock_backend/internal/platform/http/handler"
	jwtmw "controlastock_backend/internal/platform/jwt"
)

// NewRouter wires every route. Liveness, registration, login and the CEP
// proxy are public; everything else sits behind the bearer-token gate.
func NewRouter(
	auth *authhandler.AuthHandler,
	users *userhandler.UserHandler,
	items *itemhandler.ItemHandler,
	cep *cephandler.CepHandler,
	verifier jwtmw.TokenVerifier,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	// Public routes
	r.GET("/", handler.Home)
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)
	r.OPTIONS("/health", handler.Health)
	r.POST("/auth/registrar", auth.Registrar)
	r.POST("/auth/login", auth.Login)
	r.GET("/api/cep/:cep", cep.Buscar)

	// Authenticated routes
	api := r.Group("/")
	api.Use(jwtmw.AuthRequired(verifier))
	{
		api.POST("/auth/logout", auth.Logout)

		api.GET("/api/usuarios", users.List)
		api.GET("/api/usuarios/perfil", users.Perfil)
		api.PUT("/api/usuarios/perfil", users.UpdatePerfil)
		api.PUT("/api/usuarios/:id", users.UpdateByID)
		api.DELETE("/api/usuarios/:id", users.DeleteByID)

		api.GET("/api/inventario", items.List)
		api.POST("/api/inventario", items.Create)
		api.GET("/api/inventario/:id", items.GetByID)
		api.PUT("/api/inventario/:id", items.Update)
		api.DELETE("/api/inventario/:id", items.Remove)
		api.PUT("/api/inventario/:id/adicionar", items.AddQuantity)
		api.PUT("/api/inventario/:id/remover", items.RemoveQuantity)
	}

	return r
}

// corsConfig allows the local front-end origins to call the API with
// credentials.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}
