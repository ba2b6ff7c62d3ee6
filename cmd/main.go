package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"
	twilio "github.com/twilio/twilio-go"

	"github.com/divi1127/BackendDeepF/internal/app"
	"github.com/divi1127/BackendDeepF/internal/config"
	"github.com/divi1127/BackendDeepF/internal/controllers"
	"github.com/divi1127/BackendDeepF/internal/middleware"
	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/routes"
	"github.com/divi1127/BackendDeepF/internal/services"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize ", cfg.AppName, ": ", err)
	}
	defer application.Close()

	courseRepo := repositories.NewCourseRepository(application.DB)
	enrollRepo := repositories.NewEnrollmentRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	otpRepo := repositories.NewUserOTPRepository(application.DB)
	workshopRepo := repositories.NewWorkshopRepository(application.DB)
	regRepo := repositories.NewRegistrationRepository(application.DB)
	mentorRepo := repositories.NewMentorRepository(application.DB)
	appRepo := repositories.NewMentorApplicationRepository(application.DB)
	testimonialRepo := repositories.NewTestimonialRepository(application.DB)
	demoRepo := repositories.NewDemoRequestRepository(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), application.DB); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	var twClient *twilio.RestClient
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	notifier := services.NewNotificationService(cfg.EmailService, cfg.EmailUser, cfg.EmailPass, cfg.TeamEmail)

	courseService := services.NewCourseService(courseRepo)
	enrollService := services.NewEnrollmentService(enrollRepo, notifier, twClient)
	authService := services.NewAuthService(userRepo, otpRepo, notifier, cfg.JWTSecret)
	workshopService := services.NewWorkshopService(workshopRepo, regRepo, notifier, twClient)
	mentorService := services.NewMentorService(mentorRepo, appRepo, notifier)
	testimonialService := services.NewTestimonialService(testimonialRepo)
	demoService := services.NewDemoService(demoRepo, notifier, twClient)

	healthController := controllers.NewHealthController(application)
	coursesController := controllers.NewCoursesController(courseService)
	enrollmentsController := controllers.NewEnrollmentsController(enrollService)
	authController := controllers.NewAuthController(authService)
	workshopsController := controllers.NewWorkshopsController(workshopService)
	mentorsController := controllers.NewMentorsController(mentorService, application.ResumeStore)
	testimonialsController := controllers.NewTestimonialsController(testimonialService)
	demoController := controllers.NewDemoController(demoService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Courses, coursesController.ListCoursesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CourseByID, coursesController.GetCourseHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Enroll, enrollmentsController.EnrollHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Signup, authController.SignupHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Login, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.VerifyOTP, authController.VerifyOTPHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Workshops, workshopsController.ListWorkshopsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Register, workshopsController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.MentorApply, mentorsController.ApplyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Mentors, mentorsController.ListMentorsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Testimonials, testimonialsController.ListTestimonialsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Testimonials, testimonialsController.CreateTestimonialHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.DemoRequest, demoController.RequestDemoHandler).Methods(http.MethodPost)

	// Uploaded resumes are served statically by their stored filename.
	router.PathPrefix(routes.UploadsPrefix).Handler(
		http.StripPrefix(routes.UploadsPrefix, http.FileServer(http.Dir(application.ResumeStore.Dir()))),
	).Methods(http.MethodGet)

	// Secured
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	secured.HandleFunc(routes.Users, authController.ListUsersHandler).Methods(http.MethodGet)

	c := cron.New()
	_, cronErr := c.AddFunc("15 3 * * *", func() {
		if e := otpRepo.CleanupExpired(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Expired OTP cleanup failed")
		}
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule OTP cleanup cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal(cfg.AppName, " failed to start: ", err)
	}
}
