package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SummaryUpdate is one websocket frame of the live portfolio stream.
type SummaryUpdate struct {
	Summary   models.PortfolioSummary `json:"summary"`
	Timestamp time.Time               `json:"timestamp"`
}

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins (for development and demo)
	},
}

// HandleWebSocket handles GET /ws/portfolio. The summary is re-read
// from the store on every tick, so every frame reflects the latest
// mutations with no staleness window.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("Client connected to portfolio stream")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		summary, err := h.svc.PortfolioSummary()
		if err != nil {
			log.Println("portfolio stream summary failed:", err)
			summary = models.PortfolioSummary{}
		}

		update := SummaryUpdate{
			Summary:   summary,
			Timestamp: time.Now(),
		}

		if err := conn.WriteJSON(update); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
}
