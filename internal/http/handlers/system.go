package handlers

import (
	"net/http"
	"sync"

	intconfig "goairline/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "goairline booking api running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database belum terhubung", nil)
		return
	}
	var flights int
	if err := intconfig.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM flights").Scan(&flights); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "gagal query ke database: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "flights_in_db": flights})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router belum siap", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
