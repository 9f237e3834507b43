package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/config"
	"github.com/berts/gasoleo/internal/handler"
	"github.com/berts/gasoleo/internal/middleware"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/service"
	"github.com/berts/gasoleo/internal/state"
	"github.com/berts/gasoleo/internal/storage"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Manager/Store ← Backend
func New(cfg *config.Config, backend storage.Backend, store *storage.Store, mgr *state.Manager) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(store, cfg)
	proveedorSvc := service.NewProveedorService(mgr)
	cotizacionSvc := service.NewCotizacionService(mgr)
	pedidoSvc := service.NewPedidoService(mgr, cotizacionSvc)
	comunidadSvc := service.NewComunidadService(mgr)
	responsableSvc := service.NewResponsableService(mgr)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, cfg.PDFStoragePath)
	comunidadesH := handler.NewComunidadesHandler(comunidadSvc)
	responsablesH := handler.NewResponsablesHandler(responsableSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(backend))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/session", authH.Sesion)
	}

	// Protected routes — any authenticated role can work the catalog,
	// user administration stays admin-only.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	ambosRoles := middleware.RequireRole(model.RolAdmin, model.RolUsuario)
	v1 := r.Group("/v1", jwtMW, ambosRoles)
	{
		prov := v1.Group("/proveedores")
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.Listar)
			prov.GET("/:id", proveedoresH.ObtenerPorID)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
		}

		cot := v1.Group("/cotizaciones")
		{
			cot.GET("/precio", cotizacionesH.Precio)
			cot.POST("", cotizacionesH.Crear)
			cot.GET("", cotizacionesH.Listar)
			cot.GET("/:id", cotizacionesH.ObtenerPorID)
			cot.PUT("/:id", cotizacionesH.Actualizar)
			cot.DELETE("/:id", cotizacionesH.Eliminar)
		}

		ped := v1.Group("/pedidos")
		{
			ped.POST("", pedidosH.Crear)
			ped.GET("", pedidosH.Listar)
			ped.GET("/:id", pedidosH.ObtenerPorID)
			ped.GET("/:id/pdf", pedidosH.DescargarPDF)
			ped.PUT("/:id", pedidosH.Actualizar)
			ped.DELETE("/:id", pedidosH.Eliminar)
		}

		com := v1.Group("/comunidades")
		{
			com.POST("", comunidadesH.Crear)
			com.GET("", comunidadesH.Listar)
			com.GET("/:id", comunidadesH.ObtenerPorID)
			com.PUT("/:id", comunidadesH.Actualizar)
			com.DELETE("/:id", comunidadesH.Eliminar)
		}

		resp := v1.Group("/responsables")
		{
			resp.GET("", responsablesH.Listar)
			resp.GET("/:id", responsablesH.Resolver)
			resp.POST("/empleados", responsablesH.CrearEmpleado)
			resp.PUT("/empleados/:id", responsablesH.ActualizarEmpleado)
			resp.DELETE("/empleados/:id", responsablesH.EliminarEmpleado)
			resp.POST("/vecinos", responsablesH.CrearVecino)
			resp.PUT("/vecinos/:id", responsablesH.ActualizarVecino)
			resp.DELETE("/vecinos/:id", responsablesH.EliminarVecino)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRole(model.RolAdmin))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
	}

	return r
}
