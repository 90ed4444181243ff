package services

import (
	"time"

	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/auth"
	"github.com/e3mc/bschool-admin/internal/pkg/cache"
	"github.com/e3mc/bschool-admin/internal/pkg/email"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
)

// Services holds all the service instances consumed by the controllers.
type Services struct {
	AuthService              AuthService
	StudentService           StudentService
	PartnerService           PartnerService
	FormService              FormService
	ApplicationService       ApplicationService
	BrochureService          BrochureService
	CounsellingService       CounsellingService
	PartnerCounselingService PartnerCounselingService
	BlogService              BlogService
	EventService             EventService
	DashboardService         DashboardService
}

// NewServices wires every service to its repositories and shared
// infrastructure.
func NewServices(
	repos *repositories.Repositories,
	storage filestorage.Storage,
	sender email.Sender,
	jwtService *auth.JWTService,
	redis *cache.Redis,
	snapshotTTL time.Duration,
	brochurePath string,
) *Services {
	return &Services{
		AuthService:              NewAuthService(repos.AdminRepository, jwtService),
		StudentService:           NewStudentService(repos.StudentRepository, storage),
		PartnerService:           NewPartnerService(repos.PartnerRepository, storage),
		FormService:              NewFormService(repos.FormRepository, storage),
		ApplicationService:       NewApplicationService(repos.ApplicationRepository),
		BrochureService:          NewBrochureService(repos.BrochureRepository, sender, brochurePath),
		CounsellingService:       NewCounsellingService(repos.CounsellingRepository),
		PartnerCounselingService: NewPartnerCounselingService(repos.PartnerCounselingRepository),
		BlogService:              NewBlogService(repos.BlogRepository, storage),
		EventService:             NewEventService(repos.EventRepository, storage),
		DashboardService:         NewDashboardService(repos, redis, snapshotTTL),
	}
}
