package app

import (
	"cms_backend/internal/middleware"
	"cms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.Use(gin.CustomRecovery(func(ctx *gin.Context, err any) {
		c.site.ErrorPage(ctx)
	}))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	router.NoRoute(c.site.NotFoundPage)

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.site.Index)
	router.GET("/index", c.site.Index)
	router.GET("/index/:language", c.site.SetLanguage)
	router.GET("/page/:key", c.site.ShowPage)

	router.GET("/quiz/:name", c.poll.Show)
	router.POST("/quiz/:name", c.poll.Submit)

	router.GET("/login", c.auth.ShowLogin)
	router.POST("/login", c.auth.BeginLogin)
	router.GET("/auth/:provider/callback", c.auth.Callback)
	router.GET("/logout", c.auth.Logout)

	router.GET("/user/:nickname", c.user.Profile)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	user := router.Group("/user")
	user.Use(middleware.RequireLogin())
	{
		user.GET("/edit", c.user.EditForm)
		user.POST("/edit", c.user.EditSubmit)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireLogin())
	{
		menu := admin.Group("/menu")
		{
			menu.GET("", c.menu.Index)
			menu.POST("", c.menu.Create)
			menu.GET("/edit/:id", c.menu.EditForm)
			menu.POST("/edit/:id", c.menu.EditSubmit)
			menu.GET("/delete/:id", c.menu.Delete)
		}

		submenu := admin.Group("/submenu")
		{
			submenu.GET("", c.submenu.Index)
			submenu.POST("", c.submenu.Create)
			submenu.GET("/edit/:id", c.submenu.EditForm)
			submenu.POST("/edit/:id", c.submenu.EditSubmit)
			submenu.GET("/delete/:id", c.submenu.Delete)
		}

		page := admin.Group("/page")
		{
			page.GET("", c.page.Index)
			page.POST("", c.page.Create)
			page.GET("/edit/:id", c.page.EditForm)
			page.POST("/edit/:id", c.page.EditSubmit)
			page.GET("/delete/:id", c.page.Delete)
			page.POST("/upload", c.page.Upload)
		}

		quiz := admin.Group("/quiz")
		{
			quiz.GET("", c.quiz.Index)
			quiz.POST("", c.quiz.Create)
			quiz.GET("/edit/:id", c.quiz.EditForm)
			quiz.POST("/edit/:id", c.quiz.EditSubmit)
			quiz.GET("/delete/:id", c.quiz.Delete)
		}

		question := admin.Group("/quiz/question")
		{
			question.GET("", c.quizQuestion.Index)
			question.POST("", c.quizQuestion.Create)
			question.GET("/edit/:id", c.quizQuestion.EditForm)
			question.POST("/edit/:id", c.quizQuestion.EditSubmit)
			question.GET("/delete/:id", c.quizQuestion.Delete)
		}

		answer := admin.Group("/quiz/answer")
		{
			answer.GET("", c.quizAnswer.Index)
			answer.POST("", c.quizAnswer.Create)
			answer.GET("/edit/:id", c.quizAnswer.EditForm)
			answer.POST("/edit/:id", c.quizAnswer.EditSubmit)
			answer.GET("/delete/:id", c.quizAnswer.Delete)
		}
	}
}
