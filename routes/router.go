package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/sportcomplex/internal/applicant"
	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/employee"
	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/middleware"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/internal/participant"
	"github.com/DhavalSuthar-24/sportcomplex/internal/pocket"
	"github.com/DhavalSuthar-24/sportcomplex/internal/position"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/subscriber"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainee"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainer"
	"github.com/DhavalSuthar-24/sportcomplex/internal/trainergroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/vacancy"
	"github.com/DhavalSuthar-24/sportcomplex/internal/winner"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
)

// Services holds one service per entity kind.
type Services struct {
	SportTypes    *sporttype.Service
	Positions     *position.Service
	Pockets       *pocket.Service
	Employees     *employee.Service
	Trainers      *trainer.Service
	SportGroups   *sportgroup.Service
	TrainerGroups *trainergroup.Service
	Trainees      *trainee.Service
	Vacancies     *vacancy.Service
	Applicants    *applicant.Service
	SportEvents   *sportevent.Service
	Participants  *participant.Service
	Winners       *winner.Service
	Subscribers   *subscriber.Service
}

// NewServices builds every entity service over db. notifier receives created sport events.
func NewServices(db *gorm.DB, notifier sportevent.Notifier) *Services {
	return &Services{
		SportTypes:    sporttype.NewService(store.NewRepository[sporttype.SportType](db)),
		Positions:     position.NewService(store.NewRepository[position.Position](db)),
		Pockets:       pocket.NewService(store.NewRepository[pocket.Pocket](db)),
		Employees:     employee.NewService(store.NewRepository[employee.Employee](db)),
		Trainers:      trainer.NewService(store.NewRepository[trainer.Trainer](db)),
		SportGroups:   sportgroup.NewService(store.NewRepository[sportgroup.SportGroup](db)),
		TrainerGroups: trainergroup.NewService(store.NewRepository[trainergroup.TrainerGroup](db)),
		Trainees:      trainee.NewService(store.NewRepository[trainee.Trainee](db)),
		Vacancies:     vacancy.NewService(store.NewRepository[vacancy.Vacancy](db)),
		Applicants:    applicant.NewService(store.NewRepository[applicant.Applicant](db)),
		SportEvents:   sportevent.NewService(store.NewRepository[sportevent.SportEvent](db), notifier),
		Participants:  participant.NewService(store.NewRepository[participant.Participant](db)),
		Winners:       winner.NewService(store.NewRepository[winner.Winner](db)),
		Subscribers:   subscriber.NewService(store.NewRepository[subscriber.Subscriber](db)),
	}
}

// Models lists every table the services own, in dependency order.
func Models() []any {
	return []any{
		&sporttype.SportType{}, &position.Position{}, &pocket.Pocket{},
		&sportgroup.SportGroup{}, &employee.Employee{}, &trainer.Trainer{},
		&trainergroup.TrainerGroup{}, &trainee.Trainee{}, &vacancy.Vacancy{},
		&applicant.Applicant{}, &sportevent.SportEvent{}, &participant.Participant{},
		&winner.Winner{}, &subscriber.Subscriber{}, &observability.FailureEvent{},
	}
}

type Options struct {
	FrontendURL string
	Logger      *slog.Logger
	Recorder    observability.Recorder
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	// Ping checks the store for /health. Nil skips the check.
	Ping func() error
}

func SetupRoutes(services *Services, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(); err != nil {
				responses.SendError(c, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		responses.SendSuccess(c, http.StatusOK, "ok", nil)
	})
	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	reporter := func(entity string) common.ErrorReporter {
		return common.ErrorReporter{Entity: entity, Recorder: opts.Recorder, Metrics: opts.Metrics}
	}

	api := r.Group("/api")
	sporttype.RegisterSportTypeRoutes(api, services.SportTypes, reporter(sporttype.Entity))
	position.RegisterPositionRoutes(api, services.Positions, reporter(position.Entity))
	pocket.RegisterPocketRoutes(api, services.Pockets, reporter(pocket.Entity))
	employee.RegisterEmployeeRoutes(api, services.Employees, reporter(employee.Entity))
	trainer.RegisterTrainerRoutes(api, services.Trainers, reporter(trainer.Entity))
	sportgroup.RegisterSportGroupRoutes(api, services.SportGroups, reporter(sportgroup.Entity))
	trainergroup.RegisterTrainerGroupRoutes(api, services.TrainerGroups, reporter(trainergroup.Entity))
	trainee.RegisterTraineeRoutes(api, services.Trainees, reporter(trainee.Entity))
	vacancy.RegisterVacancyRoutes(api, services.Vacancies, reporter(vacancy.Entity))
	applicant.RegisterApplicantRoutes(api, services.Applicants, reporter(applicant.Entity))
	sportevent.RegisterSportEventRoutes(api, services.SportEvents, reporter(sportevent.Entity))
	participant.RegisterParticipantRoutes(api, services.Participants, reporter(participant.Entity))
	winner.RegisterWinnerRoutes(api, services.Winners, reporter(winner.Entity))
	subscriber.RegisterSubscriberRoutes(api, services.Subscribers, reporter(subscriber.Entity))

	return r
}
