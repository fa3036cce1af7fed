package deps

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/hubapi"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/inflight"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/telegram"
	"github.com/MrSnakeDoc/linkhub/internal/web"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time        // for testing, defaults to time.Now
	AllowedHosts   []string                // Host headers allowed to reach ops endpoints
	AllowedCIDRS   []string                // IPs allowed to reach ops endpoints
	AllowedOrigins []string                // CORS allow-list
	TrustProxy     bool                    // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RedisClient    redis.UniversalClient   // nil when Redis is disabled
	Links          *index.MemoryIndex      // link catalog
	API            hubapi.API              // external backend
	APIHost        string                  // backend host, reported by /infra
	Sessions       telegram.SessionManager // viewer identity
	Policy         domain.AdminPolicy      // admin UI gating
	Guard          inflight.Guard          // one upstream request per form and identity
	Render         web.ExecuteTemplateFunc // page templates
	Assets         http.FileSystem         // embedded static files
	Location       *time.Location          // display zone for timestamps
	DefaultLang    language.Tag            // UI language when the viewer has none
	ReloadTrigger  chan struct{}           // Channel to trigger a manual catalog reload
}
