package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/tutoring-api/internal/handler"
)

// registerV1Routes registers the /api/v1 resources. Reads are public;
// anything that writes goes through auth.
func registerV1Routes(g *echo.Group, h *handler.Handlers, auth echo.MiddlewareFunc) {
	registerProfileRoutes(g.Group("/profiles"), h.Profile, auth)
	registerCourseRoutes(g.Group("/courses"), h.Course, auth)
	registerSemesterRoutes(g.Group("/semesters"), h.Semester, auth)
	registerTutoringRoutes(g, h.Tutoring, auth)
}

func registerProfileRoutes(g *echo.Group, h *handler.ProfileHandler, auth echo.MiddlewareFunc) {
	g.GET("", handler.Handle(h.Handler, h.ListProfiles, http.StatusOK, &handler.EmptyRequest{}))
	g.GET("/email/:email", handler.Handle(h.Handler, h.GetProfileByEmail, http.StatusOK, &handler.GetProfileByEmailRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetProfile, http.StatusOK, &handler.IDRequest{}))

	g.POST("", handler.Handle(h.Handler, h.CreateProfile, http.StatusCreated, &handler.CreateProfileRequest{}), auth)
	g.PATCH("/:id", handler.Handle(h.Handler, h.UpdateProfile, http.StatusOK, &handler.UpdateProfileRequest{}), auth)
	g.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteProfile, http.StatusNoContent, &handler.IDRequest{}), auth)
}

func registerCourseRoutes(g *echo.Group, h *handler.CourseHandler, auth echo.MiddlewareFunc) {
	g.GET("", handler.Handle(h.Handler, h.ListCourses, http.StatusOK, &handler.ListCoursesRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetCourse, http.StatusOK, &handler.IDRequest{}))

	g.POST("", handler.Handle(h.Handler, h.CreateCourse, http.StatusCreated, &handler.CreateCourseRequest{}), auth)
	g.PATCH("/:id", handler.Handle(h.Handler, h.UpdateCourse, http.StatusOK, &handler.UpdateCourseRequest{}), auth)
	g.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteCourse, http.StatusNoContent, &handler.IDRequest{}), auth)
}

func registerSemesterRoutes(g *echo.Group, h *handler.SemesterHandler, auth echo.MiddlewareFunc) {
	g.GET("", handler.Handle(h.Handler, h.ListSemesters, http.StatusOK, &handler.EmptyRequest{}))
	g.GET("/:id", handler.Handle(h.Handler, h.GetSemester, http.StatusOK, &handler.IDRequest{}))
	g.GET("/:id/courses", handler.Handle(h.Handler, h.GetSemesterCourses, http.StatusOK, &handler.IDRequest{}))

	g.POST("", handler.Handle(h.Handler, h.CreateSemester, http.StatusCreated, &handler.CreateSemesterRequest{}), auth)
	g.PATCH("/:id", handler.Handle(h.Handler, h.UpdateSemester, http.StatusOK, &handler.UpdateSemesterRequest{}), auth)
	g.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteSemester, http.StatusNoContent, &handler.IDRequest{}), auth)
	g.POST("/:id/courses/:courseId", handler.Handle(h.Handler, h.AddSemesterCourse, http.StatusOK, &handler.SemesterCourseRequest{}), auth)
	g.DELETE("/:id/courses/:courseId", handler.HandleNoContent(h.Handler, h.RemoveSemesterCourse, http.StatusNoContent, &handler.SemesterCourseRequest{}), auth)
}

// Child records are created under their session and edited by their own id.
func registerTutoringRoutes(g *echo.Group, h *handler.TutoringHandler, auth echo.MiddlewareFunc) {
	sessions := g.Group("/tutoring-sessions")
	sessions.GET("", handler.Handle(h.Handler, h.ListSessions, http.StatusOK, &handler.ListTutoringSessionsRequest{}))
	sessions.GET("/:id", handler.Handle(h.Handler, h.GetSession, http.StatusOK, &handler.IDRequest{}))
	sessions.GET("/:id/materials", handler.Handle(h.Handler, h.GetMaterials, http.StatusOK, &handler.IDRequest{}))
	sessions.GET("/:id/reviews", handler.Handle(h.Handler, h.GetReviews, http.StatusOK, &handler.IDRequest{}))
	sessions.GET("/:id/available-times", handler.Handle(h.Handler, h.GetAvailableTimes, http.StatusOK, &handler.IDRequest{}))

	sessions.POST("", handler.Handle(h.Handler, h.CreateSession, http.StatusCreated, &handler.CreateTutoringSessionRequest{}), auth)
	sessions.PATCH("/:id", handler.Handle(h.Handler, h.UpdateSession, http.StatusOK, &handler.UpdateTutoringSessionRequest{}), auth)
	sessions.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteSession, http.StatusNoContent, &handler.IDRequest{}), auth)
	sessions.POST("/:id/materials", handler.Handle(h.Handler, h.AddMaterial, http.StatusCreated, &handler.AddMaterialRequest{}), auth)
	sessions.POST("/:id/reviews", handler.Handle(h.Handler, h.AddReview, http.StatusCreated, &handler.AddReviewRequest{}), auth)
	sessions.POST("/:id/available-times", handler.Handle(h.Handler, h.AddAvailableTime, http.StatusCreated, &handler.AddAvailableTimeRequest{}), auth)

	materials := g.Group("/materials", auth)
	materials.PATCH("/:id", handler.Handle(h.Handler, h.UpdateMaterial, http.StatusOK, &handler.UpdateMaterialRequest{}))
	materials.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteMaterial, http.StatusNoContent, &handler.IDRequest{}))

	reviews := g.Group("/reviews", auth)
	reviews.PATCH("/:id", handler.Handle(h.Handler, h.UpdateReview, http.StatusOK, &handler.UpdateReviewRequest{}))
	reviews.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteReview, http.StatusNoContent, &handler.IDRequest{}))

	times := g.Group("/available-times", auth)
	times.PATCH("/:id", handler.Handle(h.Handler, h.UpdateAvailableTime, http.StatusOK, &handler.UpdateAvailableTimeRequest{}))
	times.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteAvailableTime, http.StatusNoContent, &handler.IDRequest{}))
}
