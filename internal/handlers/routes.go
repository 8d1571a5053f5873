package handlers

import (
	"time"

	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/ratelimit"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Services is everything the HTTP layer needs. Limiter may be nil, which
// disables rate limiting.
type Services struct {
	Auth          *services.AuthService
	Users         *services.UserService
	Posts         *services.PostService
	Comments      *services.CommentService
	Stats         *services.StatsService
	Payments      *services.PaymentService
	Media         *services.MediaService
	Announcements *services.DocumentService
	Tags          *services.DocumentService
	Warnings      *services.DocumentService
	Limiter       ratelimit.Limiter
}

type AppOptions struct {
	CORSOrigins     string
	RequestTimeout  time.Duration
	WritesPerMinute int
	AccessLog       bool
}

// NewApp builds the Fiber app with every route of the forum.
func NewApp(svc Services, opts AppOptions, log *zap.SugaredLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Thread Hive",
		ErrorHandler: ErrorHandler(log),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    maxUploadSize + 1<<20,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{AllowOrigins: opts.CORSOrigins}))
	app.Use(middleware.RequestContext(opts.RequestTimeout))

	auth := middleware.AuthMiddleware(svc.Auth)
	admin := middleware.AdminMiddleware(svc.Users)
	limit := func(c *fiber.Ctx) error { return c.Next() }
	if svc.Limiter != nil {
		limit = middleware.RateLimit(svc.Limiter, opts.WritesPerMinute, time.Minute, log)
	}

	authHandler := NewAuthHandler(svc.Auth)
	userHandler := NewUserHandler(svc.Users)
	adminHandler := NewAdminHandler(svc.Users, svc.Stats)
	postHandler := NewPostHandler(svc.Posts)
	commentHandler := NewCommentHandler(svc.Comments)
	paymentHandler := NewPaymentHandler(svc.Payments)
	mediaHandler := NewMediaHandler(svc.Media)
	announcements := NewDocumentHandler(svc.Announcements)
	tags := NewDocumentHandler(svc.Tags)
	warnings := NewDocumentHandler(svc.Warnings)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Thread Hive is running")
	})
	app.Post("/jwt", authHandler.IssueToken)

	// Users
	app.Post("/users", userHandler.Register)
	app.Get("/users", auth, admin, adminHandler.ListUsers)
	app.Get("/users/admin/:email", auth, userHandler.IsAdmin)
	app.Patch("/users/admin/:id", auth, admin, adminHandler.PromoteToAdmin)
	app.Get("/users/:email", auth, userHandler.Get)

	// Posts
	app.Get("/posts", postHandler.List)
	app.Post("/posts", auth, limit, postHandler.Create)
	app.Get("/posts/recent/:email", postHandler.RecentByUser)
	app.Get("/posts/:email", postHandler.ListByUser)
	app.Delete("/posts/:id", auth, postHandler.Delete)
	app.Patch("/posts/upVote/:id", auth, limit, postHandler.Vote(models.UpVote))
	app.Patch("/posts/downVote/:id", auth, limit, postHandler.Vote(models.DownVote))
	app.Get("/post-details/:id", postHandler.Get)
	app.Get("/post-search", postHandler.Search)
	app.Get("/my-post", postHandler.Usage)

	// Comments
	app.Post("/comments", auth, limit, commentHandler.Create)
	app.Get("/comments/:postId", commentHandler.ListByPost)
	app.Delete("/comments/:id", auth, commentHandler.Delete)
	app.Patch("/comment-count/:postId", auth, postHandler.RecountComments)
	app.Patch("/reportedComment/:id", auth, commentHandler.Report)

	// Payments
	app.Post("/create-payment-intent", auth, paymentHandler.CreateIntent)
	app.Post("/successedPayment", auth, paymentHandler.Record)
	app.Patch("/successedPayment/:email", auth, paymentHandler.GrantMembership)

	// Site content
	app.Get("/announcements", announcements.List)
	app.Post("/announcements", auth, admin, announcements.Create)
	app.Get("/tags", tags.List)
	app.Post("/tags", auth, admin, tags.Create)
	app.Get("/warnings", auth, warnings.List)
	app.Post("/warnings", auth, admin, warnings.Create)
	app.Get("/stats", auth, admin, adminHandler.Stats)

	app.Post("/media", auth, limit, mediaHandler.Upload)

	return app
}
