package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	adminctrl "github.com/lshigami/Tiku/internal/controller/admin"
	userctrl "github.com/lshigami/Tiku/internal/controller/user"
	"github.com/lshigami/Tiku/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// Controllers collects every HTTP controller for route registration.
type Controllers struct {
	fx.In

	AdminQuestion     *adminctrl.AdminQuestionController
	UserExam          *userctrl.UserExamController
	UserQuestion      *userctrl.UserQuestionController
	UserWrongQuestion *userctrl.UserWrongQuestionController
}

// NewEngine builds the gin engine with request ids, zerolog request
// logging, panic recovery, CORS and the Swagger UI.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// Register mounts the admin and user APIs under /api/v1. Both require a
// bearer token signed with secret; the admin group also requires the
// ADMIN role.
func Register(r *gin.Engine, secret string, ctrls Controllers) {
	auth := middleware.Auth(secret)

	adminGroup := r.Group("/api/v1/admin", auth, middleware.RequireRole(middleware.RoleAdmin))
	{
		questions := adminGroup.Group("/questions")
		questions.POST("/import", ctrls.AdminQuestion.ImportQuestions)
		questions.GET("/stats", ctrls.AdminQuestion.GetStats)
		questions.POST("", ctrls.AdminQuestion.CreateQuestion)
		questions.PUT("/:id", ctrls.AdminQuestion.UpdateQuestion)
		questions.DELETE("/:id", ctrls.AdminQuestion.DeleteQuestion)
		questions.POST("/clear", ctrls.AdminQuestion.ClearQuestions)
		questions.POST("/:id/explanation", ctrls.AdminQuestion.ExplainQuestion)
	}

	userGroup := r.Group("/api/v1", auth)
	{
		userGroup.GET("/questions", ctrls.UserQuestion.ListQuestions)
		userGroup.GET("/questions/random", ctrls.UserQuestion.RandomPractice)
		userGroup.GET("/questions/:id", ctrls.UserQuestion.GetQuestion)

		userGroup.POST("/exams", ctrls.UserExam.StartExam)
		userGroup.GET("/exams", ctrls.UserExam.ListExams)
		userGroup.GET("/exams/:exam_id/questions", ctrls.UserExam.GetExamQuestions)
		userGroup.POST("/exams/:exam_id/submit", ctrls.UserExam.SubmitExam)
		userGroup.GET("/exams/:exam_id/result", ctrls.UserExam.GetExamResult)

		userGroup.GET("/wrong-questions", ctrls.UserWrongQuestion.ListWrongQuestions)
		userGroup.POST("/wrong-questions/:id/master", ctrls.UserWrongQuestion.MasterWrongQuestion)
	}
}
