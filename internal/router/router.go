package router

import (
	"ocean/internal/controller"
	"ocean/internal/repository/redis"
	"ocean/internal/rpc"
	"ocean/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// InitRouter wires the full dispatch chain: one POST endpoint into the
// gateway, everything else rejected before parsing.
func InitRouter(db *gorm.DB, cache *redis.ProfileCache, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	gw := rpc.NewGateway(log)
	gw.Register("user", controller.NewUser(service.NewUserService(db, cache)))
	gw.Register("topic", controller.NewTopic(service.NewTopicService(db)))
	gw.Register("mandela", controller.NewMandela(service.NewMandelaService(db)))
	gw.Register("comment", controller.NewComment(service.NewCommentService(db)))

	r.POST("/api", gw.Handle)

	r.HandleMethodNotAllowed = true
	r.NoRoute(rpc.BadRequest)
	r.NoMethod(rpc.BadRequest)

	return r
}
