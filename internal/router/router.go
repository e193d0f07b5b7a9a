package router

import (
	"net/http"

	"yatube/internal/config"
	"yatube/internal/handler"
	"yatube/internal/middleware"
	"yatube/internal/repository/redis"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(middleware.CurrentUser())
	r.Static("/images", cfg.UploadDir)

	pageCache := redis.NewPageCacheRepository(cfg.IndexCacheTTL)

	post := handler.NewPostHandler(db, cfg.PageSize, cfg.UploadDir)
	follow := handler.NewFollowHandler(db)
	poll := handler.NewPollHandler(db)
	user := handler.NewUserHandler(
		service.NewUserService(db, service.NewEmailService(cfg.SMTP)))

	// Public read pages. Only the landing list is cached.
	r.GET("/", middleware.CachePage(pageCache), post.Index)
	r.GET("/group/:slug/", post.GroupPosts)
	r.GET("/profile/:username/", post.Profile)
	r.GET("/posts/:id/", post.Detail)

	// Polls.
	r.GET("/polls/", poll.Questions)
	r.GET("/polls/:id/", poll.Question)
	r.POST("/polls/:id/", poll.Vote)
	r.GET("/polls/:id/chart/", poll.Chart)

	// Session pages.
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/signup/", user.SignupForm)
		authGroup.POST("/signup/", user.Signup)
		authGroup.GET("/login/", user.LoginForm)
		authGroup.POST("/login/", user.Login)
		authGroup.GET("/logout/", user.Logout)
		authGroup.GET("/password_reset/", user.PasswordResetForm)
		authGroup.POST("/password_reset/", user.PasswordReset)
		authGroup.GET("/password_reset/confirm/", user.PasswordResetConfirmForm)
		authGroup.POST("/password_reset/confirm/", user.PasswordResetConfirm)
	}

	// Everything below needs a session.
	gated := r.Group("", middleware.LoginRequired())
	{
		gated.GET("/create/", post.CreateForm)
		gated.POST("/create/", post.Create)
		gated.GET("/posts/:id/edit/", post.EditForm)
		gated.POST("/posts/:id/edit/", post.Edit)
		gated.POST("/posts/:id/comment/", post.AddComment)
		gated.GET("/profile/:username/follow/", follow.Follow)
		gated.GET("/profile/:username/unfollow/", follow.Unfollow)
		gated.GET("/follow/", post.FollowIndex)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	return r
}
